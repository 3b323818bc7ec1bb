// Package heuristic extracts business and review fields from the document
// tree through ordered CSS-selector cascades. It is the fallback path when
// embedded structured metadata is absent or incomplete, and the only path for
// per-review fields.
package heuristic

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultMaxBlocks bounds how many candidate review blocks are processed
	// per document, protecting against pathological pages where the generic
	// container fallback matches excessively.
	DefaultMaxBlocks = 200

	// DefaultMinReviewChars is the minimum review-text length accepted by the
	// noise gate.
	DefaultMinReviewChars = 20
)

// defaultDenylist marks promotional or navigational text that matches the
// review-text selectors structurally but is not a review.
var defaultDenylist = []string{
	"things to do",
	"best of",
	"verified",
	"back to search",
}

// Extractor applies the selector cascades to a parsed document.
type Extractor struct {
	Selectors      Selectors
	MaxBlocks      int
	MinReviewChars int
	Denylist       []string
}

// New returns an Extractor with the packaged gates and the given cascades.
func New(sel Selectors) *Extractor {
	return &Extractor{
		Selectors:      sel,
		MaxBlocks:      DefaultMaxBlocks,
		MinReviewChars: DefaultMinReviewChars,
		Denylist:       defaultDenylist,
	}
}

// firstMatch tries each query of the cascade in priority order within scope
// and returns the matches of the first query that yields any, or nil.
// Cascades are never merged or scored.
func firstMatch(scope *goquery.Selection, cascade []string) *goquery.Selection {
	for _, q := range cascade {
		if s := scope.Find(q); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// isNoise reports whether review-candidate text fails the minimum-length gate
// or contains a denylisted boilerplate substring.
func (e *Extractor) isNoise(text string) bool {
	if len(text) < e.MinReviewChars {
		return true
	}
	lower := strings.ToLower(text)
	for _, junk := range e.Denylist {
		if strings.Contains(lower, junk) {
			return true
		}
	}
	return false
}
