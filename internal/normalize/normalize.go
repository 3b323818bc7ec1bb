package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	leadingNumberRe = regexp.MustCompile(`[0-9][0-9.,]*`)
	ratingLabelRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:star|of 5 bubbles)`)
	bubbleClassRe   = regexp.MustCompile(`bubble_(\d+)`)

	// Ordered date shapes: "Month D, YYYY", "D Month YYYY", "YYYY-MM-DD".
	dateRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Za-z]+\s+\d{1,2},\s*\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}\s[A-Za-z]+\s\d{4}\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	}
)

// Text returns the selection's visible text with internal whitespace runs
// collapsed to single spaces and the ends trimmed. A nil or empty selection,
// or whitespace-only content, yields "".
func Text(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return Collapse(sel.First().Text())
}

// Collapse trims s and collapses every run of whitespace to a single space.
func Collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\u00a0' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

// LeadingNumber returns the first contiguous run of digits, dots and commas
// with thousands separators stripped, or "" when s carries no digits.
func LeadingNumber(s string) string {
	m := leadingNumberRe.FindString(s)
	if m == "" {
		return ""
	}
	return strings.ReplaceAll(m, ",", "")
}

// ParseFloat is a best-effort float coercion; nil on malformed input.
func ParseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseInt is a best-effort integer coercion. Float-shaped input is accepted
// and truncated toward zero, so "4.0" and "120" both parse.
func ParseInt(s string) *int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	n := int(v)
	return &n
}

// RatingFromLabel extracts a rating from an accessibility label such as
// "4.5 star rating" or "3.5 of 5 bubbles". Star widgets carry no numeric
// text, so the label is the canonical place the number is discoverable.
func RatingFromLabel(label string) *float64 {
	m := ratingLabelRe.FindStringSubmatch(label)
	if m == nil {
		return nil
	}
	return ParseFloat(m[1])
}

// BubbleClassRating decodes the class-name rating encoding where a fragment
// like "bubble_40" carries the rating as an integer times ten.
func BubbleClassRating(classes string) *float64 {
	m := bubbleClassRe.FindStringSubmatch(classes)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	v := float64(n) / 10.0
	return &v
}

// DateSubstring returns the first substring of s matching a recognized date
// shape. When no shape matches, the full collapsed text is returned verbatim
// so a not-yet-recognized format is carried through rather than dropped.
func DateSubstring(s string) string {
	trimmed := Collapse(s)
	for _, re := range dateRes {
		if m := re.FindString(trimmed); m != "" {
			return m
		}
	}
	return trimmed
}
