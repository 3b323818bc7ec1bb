package record

import "strings"

// Business holds the page-level fields extracted once per document.
// String fields are "" when absent; numeric fields are nil when absent.
// A Business is assembled once and not mutated afterwards.
type Business struct {
	Name          string
	Categories    string
	Location      string
	PriceRange    string
	OverallRating *float64
	TotalReviews  *int
}

// Fill returns a copy of b with every absent field taken from fb.
// Structured metadata is trusted over DOM heuristics, so callers pass the
// JSON-LD result as the receiver and the heuristic result as the fallback.
func (b Business) Fill(fb Business) Business {
	if strings.TrimSpace(b.Name) == "" {
		b.Name = fb.Name
	}
	if strings.TrimSpace(b.Categories) == "" {
		b.Categories = fb.Categories
	}
	if strings.TrimSpace(b.Location) == "" {
		b.Location = fb.Location
	}
	if strings.TrimSpace(b.PriceRange) == "" {
		b.PriceRange = fb.PriceRange
	}
	if b.OverallRating == nil {
		b.OverallRating = fb.OverallRating
	}
	if b.TotalReviews == nil {
		b.TotalReviews = fb.TotalReviews
	}
	return b
}

// Review holds the fields of a single extracted review. Stars is nil when no
// rating encoding was found. Date is either one of the recognized shapes or
// the raw trimmed text when no shape matched.
type Review struct {
	Reviewer         string
	ReviewerLocation string
	Date             string
	Stars            *float64
	Text             string
}

// Row is the flattened join of one Business with one Review. Optional values
// are pointers so absent fields serialize as JSON null while the column set
// stays stable.
type Row struct {
	BusinessName     *string  `json:"business_name"`
	Categories       *string  `json:"categories"`
	CityRegion       *string  `json:"city_region"`
	PriceRange       *string  `json:"price_range"`
	OverallRating    *float64 `json:"overall_rating"`
	TotalReviews     *int     `json:"total_reviews"`
	Reviewer         *string  `json:"reviewer_handle"`
	ReviewerLocation *string  `json:"reviewer_location"`
	Stars            *float64 `json:"star_rating"`
	Date             *string  `json:"date"`
	Text             *string  `json:"review_text"`
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
