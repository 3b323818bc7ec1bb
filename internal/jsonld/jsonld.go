// Package jsonld reads embedded JSON-LD business schema blocks and maps them
// to canonical fields. Structured metadata is trusted over DOM heuristics, so
// scanning short-circuits on the first acceptable object.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/listingparse/internal/normalize"
	"github.com/hyperifyio/listingparse/internal/record"
)

// businessTypes is the recognized set of schema.org business entity types.
var businessTypes = map[string]bool{
	"LocalBusiness":     true,
	"Restaurant":        true,
	"Hotel":             true,
	"Organization":      true,
	"TouristAttraction": true,
	"Product":           true,
}

// Extract scans every script[type="application/ld+json"] block in document
// order. Blocks that fail to parse are skipped, not fatal. The boolean is
// true when an acceptable business object was found.
func Extract(doc *goquery.Document) (record.Business, bool) {
	var out record.Business
	found := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			log.Warn().Err(err).Int("block", i).Msg("skipping malformed ld+json block")
			return true
		}
		for _, obj := range asObjects(payload) {
			if !isBusinessObject(obj) {
				continue
			}
			out = fromObject(obj)
			found = true
			return false
		}
		return true
	})
	return out, found
}

// asObjects flattens the payload into candidate objects: a single top-level
// object or a top-level array of objects.
func asObjects(payload any) []map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		return []map[string]any{v}
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

// isBusinessObject accepts an object when at least one declared @type
// (single string or list) belongs to the recognized business-entity set.
func isBusinessObject(obj map[string]any) bool {
	for _, t := range asStrings(obj["@type"]) {
		if businessTypes[t] {
			return true
		}
	}
	return false
}

func fromObject(obj map[string]any) record.Business {
	b := record.Business{
		Name:       asString(obj["name"]),
		Categories: joinCategories(obj),
		Location:   cityRegion(obj["address"]),
		PriceRange: asString(obj["priceRange"]),
	}
	if agg, ok := obj["aggregateRating"].(map[string]any); ok {
		b.OverallRating = toFloat(agg["ratingValue"])
		count := toInt(agg["reviewCount"])
		if count == nil {
			count = toInt(agg["ratingCount"])
		}
		if count != nil && *count >= 0 {
			b.TotalReviews = count
		}
	}
	return b
}

// joinCategories concatenates servesCuisine and category, each of which may
// be a single string or a list, de-duplicating while preserving encounter
// order.
func joinCategories(obj map[string]any) string {
	seen := map[string]bool{}
	var cats []string
	for _, key := range []string{"servesCuisine", "category"} {
		for _, c := range asStrings(obj[key]) {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return strings.Join(cats, ", ")
}

// cityRegion prefers locality-style sub-fields and joins city and region
// only when both exist and differ.
func cityRegion(addr any) string {
	m, ok := addr.(map[string]any)
	if !ok {
		return ""
	}
	city := asString(m["addressLocality"])
	if city == "" {
		city = asString(m["locality"])
	}
	region := asString(m["addressRegion"])
	if city == "" {
		return region
	}
	if region != "" && region != city {
		return city + ", " + region
	}
	return city
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func asStrings(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// toFloat coerces a JSON number or numeric string; nil otherwise.
func toFloat(v any) *float64 {
	switch t := v.(type) {
	case float64:
		f := t
		return &f
	case string:
		return normalize.ParseFloat(t)
	}
	return nil
}

func toInt(v any) *int {
	switch t := v.(type) {
	case float64:
		n := int(t)
		return &n
	case string:
		return normalize.ParseInt(t)
	}
	return nil
}
