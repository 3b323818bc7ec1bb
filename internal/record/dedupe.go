package record

import "strings"

// Dedupe removes repeated reviews, keeping the first occurrence. Identity is
// the (trimmed review text, date) pair: the same review matched by several
// overlapping container selectors collapses to one entry without any element
// identity tracking. The operation is idempotent.
func Dedupe(reviews []Review) []Review {
	type key struct{ text, date string }
	seen := make(map[key]struct{}, len(reviews))
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		k := key{text: strings.TrimSpace(r.Text), date: r.Date}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// BuildRows merges one Business into every surviving Review by field union.
// Business fields are identical across all rows from the same document.
func BuildRows(b Business, reviews []Review) []Row {
	rows := make([]Row, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, Row{
			BusinessName:     optString(b.Name),
			Categories:       optString(b.Categories),
			CityRegion:       optString(b.Location),
			PriceRange:       optString(b.PriceRange),
			OverallRating:    b.OverallRating,
			TotalReviews:     b.TotalReviews,
			Reviewer:         optString(r.Reviewer),
			ReviewerLocation: optString(r.ReviewerLocation),
			Stars:            r.Stars,
			Date:             optString(r.Date),
			Text:             optString(r.Text),
		})
	}
	return rows
}
