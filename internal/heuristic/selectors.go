package heuristic

// Selectors holds the ordered query cascades used when structured metadata is
// absent or incomplete. Each cascade lists a primary site-specific selector
// first and generic fallbacks after; queries are tried in order and the first
// one returning any match wins. Start from Defaults and override individual
// cascades per deployment via the config file.
type Selectors struct {
	BusinessName     []string `yaml:"businessName" json:"businessName"`
	BusinessRating   []string `yaml:"businessRating" json:"businessRating"`
	CategoryAnchors  []string `yaml:"categoryAnchors" json:"categoryAnchors"`
	Location         []string `yaml:"location" json:"location"`
	TotalReviews     []string `yaml:"totalReviews" json:"totalReviews"`
	PriceIndicator   []string `yaml:"priceIndicator" json:"priceIndicator"`
	ProfileAnchor    []string `yaml:"profileAnchor" json:"profileAnchor"`
	ReviewContainer  []string `yaml:"reviewContainer" json:"reviewContainer"`
	ReviewerHandle   []string `yaml:"reviewerHandle" json:"reviewerHandle"`
	ReviewerLocation []string `yaml:"reviewerLocation" json:"reviewerLocation"`
	ReviewDate       []string `yaml:"reviewDate" json:"reviewDate"`
	ReviewRating     []string `yaml:"reviewRating" json:"reviewRating"`
	ReviewText       []string `yaml:"reviewText" json:"reviewText"`
}

// Defaults returns the packaged cascades covering the known page variants.
func Defaults() Selectors {
	return Selectors{
		BusinessName: []string{
			"h1.y-css-1iiiexg",
			"h1",
		},
		BusinessRating: []string{
			".y-css-10rn8xw div[role='img']",
			"[role='img'][aria-label*='star']",
			"span[aria-label*='of 5 bubbles']",
		},
		CategoryAnchors: []string{
			"a[href*='/c/']",
			"a[class*='category']",
			"a[data-analytics*='category']",
		},
		Location: []string{
			"[data-testid*='address']",
			"address",
			"span[class*='address']",
			"div[class*='address']",
		},
		TotalReviews: []string{
			".y-css-1wz9c5l span.y-css-owgckf",
			"[class*='review-count'] span",
		},
		PriceIndicator: []string{
			"span[class*='price']",
		},
		ProfileAnchor: []string{
			".user-passport-info a.y-css-1x1e1r2",
			"a[href*='/user_details']",
			"a[class*='ui_header_link']",
		},
		ReviewContainer: []string{
			"ul.list__09f24__ynIEd li",
			"section[aria-label='Recommended Reviews'] article",
			"div[class*='review-container']",
			"li[class*='review']",
			"article[class*='review']",
			"article, div, li",
		},
		ReviewerHandle: []string{
			".user-passport-info a.y-css-1x1e1r2",
			"a[href*='/user_details']",
			"a[class*='ui_header_link']",
		},
		ReviewerLocation: []string{
			".user-passport-info .y-css-12kfrpt",
			"[class*='passport'] span[class*='location']",
			"span[class*='userLocation']",
			"div[class*='user-location']",
		},
		ReviewDate: []string{
			".y-css-scqtta span.y-css-1vi7y4e",
			"[data-test-target*='review-date']",
			"time",
			"span[class*='ratingDate']",
		},
		ReviewRating: []string{
			".y-css-scqtta div[role='img']",
			"[aria-label*='star rating']",
			"[role='img'][aria-label*='star']",
			"span[class*='ui_bubble_rating']",
		},
		ReviewText: []string{
			"p.comment__09f24__D0cxf span.raw__09f24__T4Ezm",
			"q span",
			"p",
			"span[class*='raw__']",
		},
	}
}

// Merge overlays any non-empty cascade from o onto s, leaving the rest of the
// defaults intact. Used for per-deployment overrides from the config file.
func (s *Selectors) Merge(o Selectors) {
	if len(o.BusinessName) > 0 {
		s.BusinessName = o.BusinessName
	}
	if len(o.BusinessRating) > 0 {
		s.BusinessRating = o.BusinessRating
	}
	if len(o.CategoryAnchors) > 0 {
		s.CategoryAnchors = o.CategoryAnchors
	}
	if len(o.Location) > 0 {
		s.Location = o.Location
	}
	if len(o.TotalReviews) > 0 {
		s.TotalReviews = o.TotalReviews
	}
	if len(o.PriceIndicator) > 0 {
		s.PriceIndicator = o.PriceIndicator
	}
	if len(o.ProfileAnchor) > 0 {
		s.ProfileAnchor = o.ProfileAnchor
	}
	if len(o.ReviewContainer) > 0 {
		s.ReviewContainer = o.ReviewContainer
	}
	if len(o.ReviewerHandle) > 0 {
		s.ReviewerHandle = o.ReviewerHandle
	}
	if len(o.ReviewerLocation) > 0 {
		s.ReviewerLocation = o.ReviewerLocation
	}
	if len(o.ReviewDate) > 0 {
		s.ReviewDate = o.ReviewDate
	}
	if len(o.ReviewRating) > 0 {
		s.ReviewRating = o.ReviewRating
	}
	if len(o.ReviewText) > 0 {
		s.ReviewText = o.ReviewText
	}
}
