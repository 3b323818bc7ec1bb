package heuristic

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/listingparse/internal/normalize"
	"github.com/hyperifyio/listingparse/internal/record"
)

// blockAncestors defines a review block's boundary when climbing from a
// profile-link anchor.
const blockAncestors = "li, article, section, div"

// Reviews locates repeating review units and extracts their fields. The
// primary strategy anchors on reviewer-profile links, a strong low
// false-positive signal: each anchor climbs to its nearest enclosing
// list-item/article/container ancestor and the anchor's own text is carried
// forward as the authoritative reviewer name. Only when no profile links
// exist at all does the locator fall back to matching candidate containers
// directly.
func (e *Extractor) Reviews(doc *goquery.Document) []record.Review {
	anchors := firstMatch(doc.Selection, e.Selectors.ProfileAnchor)
	if anchors != nil {
		return e.reviewsFromAnchors(anchors)
	}
	return e.reviewsFromContainers(doc)
}

func (e *Extractor) reviewsFromAnchors(anchors *goquery.Selection) []record.Review {
	var out []record.Review
	anchors.EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= e.MaxBlocks {
			log.Debug().Int("cap", e.MaxBlocks).Msg("review block cap reached")
			return false
		}
		block := a.Closest(blockAncestors)
		if block.Length() == 0 {
			return true
		}
		if rev, ok := e.blockFields(block, normalize.Text(a)); ok {
			out = append(out, rev)
		}
		return true
	})
	return out
}

func (e *Extractor) reviewsFromContainers(doc *goquery.Document) []record.Review {
	blocks := firstMatch(doc.Selection, e.Selectors.ReviewContainer)
	if blocks == nil {
		return nil
	}
	var out []record.Review
	blocks.EachWithBreak(func(i int, block *goquery.Selection) bool {
		if i >= e.MaxBlocks {
			log.Debug().Int("cap", e.MaxBlocks).Msg("review block cap reached")
			return false
		}
		if rev, ok := e.blockFields(block, ""); ok {
			out = append(out, rev)
		}
		return true
	})
	return out
}

// blockFields runs the per-block cascades on one candidate container.
// forcedName, when non-empty, skips the noisier in-block name lookup. The
// boolean is false when the block yields nothing worth keeping.
func (e *Extractor) blockFields(block *goquery.Selection, forcedName string) (record.Review, bool) {
	rev := record.Review{Reviewer: forcedName}
	if rev.Reviewer == "" {
		rev.Reviewer = normalize.Text(firstMatch(block, e.Selectors.ReviewerHandle))
	}
	rev.ReviewerLocation = normalize.Text(firstMatch(block, e.Selectors.ReviewerLocation))

	text := normalize.Text(firstMatch(block, e.Selectors.ReviewText))
	if text != "" && e.isNoise(text) {
		// Structurally matched but promotional/navigational: reject the block.
		return record.Review{}, false
	}
	rev.Text = text

	// Unrelated layout containers produce neither a reviewer nor text.
	if rev.Reviewer == "" && rev.Text == "" {
		return record.Review{}, false
	}

	rev.Stars = e.blockRating(block)
	if raw := normalize.Text(firstMatch(block, e.Selectors.ReviewDate)); raw != "" {
		rev.Date = normalize.DateSubstring(raw)
	}

	if rev.Reviewer == "" && rev.Text == "" && rev.Date == "" && rev.Stars == nil {
		return record.Review{}, false
	}
	return rev, true
}

// blockRating reads the rating via accessibility label first, then falls
// back to the bubble class-name encoding.
func (e *Extractor) blockRating(block *goquery.Selection) *float64 {
	if r := e.ratingFromCascade(block, e.Selectors.ReviewRating); r != nil {
		return r
	}
	var rating *float64
	block.Find("span[class*='ui_bubble_rating']").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if classes, ok := sel.Attr("class"); ok {
			if r := normalize.BubbleClassRating(classes); r != nil {
				rating = r
				return false
			}
		}
		return true
	})
	return rating
}
