package app

import "github.com/hyperifyio/listingparse/internal/heuristic"

// Flag defaults shared with the config-file overlay.
const (
	DefaultInputPath = "listing.html"
	DefaultOutDir    = "parsed"
)

// Config holds runtime configuration for one extraction run.
type Config struct {
	InputPath string
	OutDir    string

	// Extraction
	MaxBlocks int
	Selectors heuristic.Selectors

	// Behavior
	EnablePDF bool
	Verbose   bool
}
