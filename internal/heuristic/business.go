package heuristic

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hyperifyio/listingparse/internal/normalize"
	"github.com/hyperifyio/listingparse/internal/record"
)

// maxCategoryChars guards against a category cascade accidentally matching
// unrelated long link text.
const maxCategoryChars = 40

var (
	reviewWordRe = regexp.MustCompile(`(?i)\breviews?\b`)
	currencyRe   = regexp.MustCompile(`[$€£¥]{1,4}`)
)

// Business extracts the page-level fields from the document.
func (e *Extractor) Business(doc *goquery.Document) record.Business {
	return record.Business{
		Name:          normalize.Text(firstMatch(doc.Selection, e.Selectors.BusinessName)),
		Categories:    e.categories(doc),
		Location:      normalize.Text(firstMatch(doc.Selection, e.Selectors.Location)),
		PriceRange:    e.priceRange(doc),
		OverallRating: e.ratingFromCascade(doc.Selection, e.Selectors.BusinessRating),
		TotalReviews:  e.totalReviews(doc),
	}
}

// ratingFromCascade walks a rating cascade and returns the first rating
// parseable from a matched element's accessibility label.
func (e *Extractor) ratingFromCascade(scope *goquery.Selection, cascade []string) *float64 {
	var rating *float64
	for _, q := range cascade {
		scope.Find(q).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if label, ok := sel.Attr("aria-label"); ok {
				if r := normalize.RatingFromLabel(label); r != nil {
					rating = r
					return false
				}
			}
			return true
		})
		if rating != nil {
			return rating
		}
	}
	return nil
}

// categories collects category-link anchor texts across the cascade in
// selector then document order, filters out candidates at or above the
// length guard, and joins the de-duplicated remainder.
func (e *Extractor) categories(doc *goquery.Document) string {
	seen := map[string]bool{}
	var cats []string
	for _, q := range e.Selectors.CategoryAnchors {
		doc.Find(q).Each(func(_ int, sel *goquery.Selection) {
			t := normalize.Text(sel)
			if t == "" || len(t) >= maxCategoryChars || seen[t] {
				return
			}
			seen[t] = true
			cats = append(cats, t)
		})
	}
	return strings.Join(cats, ", ")
}

// priceRange reads the rendered price indicator, else falls back to the
// first run of 1-4 currency glyphs anywhere in the document text.
func (e *Extractor) priceRange(doc *goquery.Document) string {
	if p := normalize.Text(firstMatch(doc.Selection, e.Selectors.PriceIndicator)); p != "" {
		return p
	}
	return currencyRe.FindString(doc.Text())
}

// totalReviews tries the scoped cascade first so a scoped match wins when
// present, then falls back to a document-wide text-node scan for a whole
// word "review"/"reviews" with an extractable leading integer. First match
// wins; counts are never aggregated across nodes.
func (e *Extractor) totalReviews(doc *goquery.Document) *int {
	var total *int
	if matches := firstMatch(doc.Selection, e.Selectors.TotalReviews); matches != nil {
		matches.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if n := normalize.ParseInt(normalize.LeadingNumber(normalize.Text(sel))); n != nil && *n > 0 {
				total = n
				return false
			}
			return true
		})
	}
	if total != nil {
		return total
	}
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.TextNode && reviewWordRe.MatchString(n.Data) {
			if num := normalize.ParseInt(normalize.LeadingNumber(n.Data)); num != nil && *num > 0 {
				total = num
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, root := range doc.Nodes {
		if walk(root) {
			break
		}
	}
	return total
}
