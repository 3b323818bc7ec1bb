package heuristic

import (
	"fmt"
	"strings"
	"testing"
)

func TestReviews_AnchorLocatorCarriesReviewerName(t *testing.T) {
	doc := parseFixture(t, `<html><body><ul>
	<li>
	  <a href="/user_details?id=1">alice</a>
	  <span class="ratingDate">Reviewed May 5, 2023</span>
	  <p>Great food and friendly staff, would absolutely return.</p>
	</li>
	<li>
	  <a href="/user_details?id=2">bob</a>
	  <p>Quiet on weekdays, perfect for reading over coffee.</p>
	</li>
	</ul></body></html>`)

	reviews := New(Defaults()).Reviews(doc)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Reviewer != "alice" || reviews[1].Reviewer != "bob" {
		t.Fatalf("anchor text not carried as reviewer name: %+v", reviews)
	}
	if reviews[0].Date != "May 5, 2023" {
		t.Fatalf("date = %q, want extracted shape", reviews[0].Date)
	}
	if !strings.HasPrefix(reviews[0].Text, "Great food") {
		t.Fatalf("review text = %q", reviews[0].Text)
	}
}

func TestReviews_StarAriaLabelAndBubbleClassSiblings(t *testing.T) {
	doc := parseFixture(t, `<html><body>
	<li class="review-item">
	  <a href="/user_details?id=1">alice</a>
	  <div role="img" aria-label="4.5 star rating"></div>
	  <p>Lovely rooftop terrace with a view over the harbor.</p>
	</li>
	<li class="review-item">
	  <a href="/user_details?id=2">bob</a>
	  <span class="ui_bubble_rating bubble_35"></span>
	  <p>Solid brunch menu although service was a little slow.</p>
	</li>
	</body></html>`)

	reviews := New(Defaults()).Reviews(doc)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Stars == nil || *reviews[0].Stars != 4.5 {
		t.Fatalf("aria-label rating = %v, want 4.5", reviews[0].Stars)
	}
	if reviews[1].Stars == nil || *reviews[1].Stars != 3.5 {
		t.Fatalf("bubble-class rating = %v, want 3.5", reviews[1].Stars)
	}
}

func TestReviews_ShortOrDenylistedTextDropsBlock(t *testing.T) {
	doc := parseFixture(t, `<html><body>
	<li class="review-item">
	  <a href="/user_details?id=1">alice</a>
	  <p>Verified</p>
	</li>
	<li class="review-item">
	  <a href="/user_details?id=2">bob</a>
	  <p>Back to search results for the best of things to do nearby.</p>
	</li>
	<li class="review-item">
	  <a href="/user_details?id=3">carol</a>
	  <p>A genuinely helpful review with plenty of detail in it.</p>
	</li>
	</body></html>`)

	reviews := New(Defaults()).Reviews(doc)
	if len(reviews) != 1 {
		t.Fatalf("expected only the genuine review, got %d: %+v", len(reviews), reviews)
	}
	if reviews[0].Reviewer != "carol" {
		t.Fatalf("surviving reviewer = %q, want carol", reviews[0].Reviewer)
	}
}

func TestReviews_ContainerFallbackWhenNoProfileAnchors(t *testing.T) {
	doc := parseFixture(t, `<html><body>
	<article class="review-card">
	  <span class="userLocation">Leeds, UK</span>
	  <span class="ratingDate">2024-01-30</span>
	  <q><span>Spotless rooms and a generous breakfast buffet.</span></q>
	</article>
	<article class="review-card">
	  <q><span>Walls are thin but the location is unbeatable.</span></q>
	</article>
	</body></html>`)

	reviews := New(Defaults()).Reviews(doc)
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews from container fallback, got %d", len(reviews))
	}
	if reviews[0].ReviewerLocation != "Leeds, UK" {
		t.Fatalf("reviewer location = %q", reviews[0].ReviewerLocation)
	}
	if reviews[0].Date != "2024-01-30" {
		t.Fatalf("date = %q, want ISO shape", reviews[0].Date)
	}
}

func TestReviews_UnrelatedContainersYieldNothing(t *testing.T) {
	doc := parseFixture(t, `<html><body>
	<div class="layout-grid"><div class="sidebar"></div></div>
	</body></html>`)
	if reviews := New(Defaults()).Reviews(doc); len(reviews) != 0 {
		t.Fatalf("expected no reviews from layout containers, got %d", len(reviews))
	}
}

func TestReviews_BlockCapBoundsProcessing(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><body>`)
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, `<li class="review-item"><a href="/user_details?id=%d">user%d</a><p>Review number %d with enough text to pass the gate.</p></li>`, i, i, i)
	}
	sb.WriteString(`</body></html>`)
	doc := parseFixture(t, sb.String())

	e := New(Defaults())
	e.MaxBlocks = 10
	reviews := e.Reviews(doc)
	if len(reviews) != 10 {
		t.Fatalf("expected cap of 10 blocks, got %d", len(reviews))
	}
	if reviews[9].Reviewer != "user9" {
		t.Fatalf("expected in-order processing up to the cap, got %q", reviews[9].Reviewer)
	}
}
