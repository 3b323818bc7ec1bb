// Package app wires the extraction pipeline: document parse, structured
// metadata first with DOM-heuristic fallback, review block location,
// deduplication, row assembly, and artifact writing.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/listingparse/internal/heuristic"
	"github.com/hyperifyio/listingparse/internal/htmldoc"
	"github.com/hyperifyio/listingparse/internal/jsonld"
	"github.com/hyperifyio/listingparse/internal/output"
	"github.com/hyperifyio/listingparse/internal/record"
)

type App struct {
	cfg Config
}

func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run executes one extraction over the configured input document and writes
// the artifacts. It returns the number of output rows. Only I/O failures
// return an error; missing or malformed page content degrades to absent
// fields, and a run yielding zero rows is still a successful run.
func (a *App) Run() (int, error) {
	raw, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return 0, fmt.Errorf("read input: %w", err)
	}
	doc, err := htmldoc.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("parse document: %w", err)
	}

	ex := heuristic.New(a.cfg.Selectors)
	if a.cfg.MaxBlocks > 0 {
		ex.MaxBlocks = a.cfg.MaxBlocks
	}

	// Business record: structured metadata wins field-by-field over the DOM
	// heuristics.
	structured, found := jsonld.Extract(doc)
	if found {
		log.Debug().Str("name", structured.Name).Msg("structured business metadata found")
	} else {
		log.Debug().Msg("no structured business metadata; relying on DOM heuristics")
	}
	business := structured.Fill(ex.Business(doc))

	reviews := record.Dedupe(ex.Reviews(doc))
	rows := record.BuildRows(business, reviews)
	if len(rows) == 0 {
		log.Warn().Msg("no reviews matched any strategy")
	}

	w := &output.Writer{Dir: a.cfg.OutDir, PDF: a.cfg.EnablePDF}
	if err := w.Write(rows); err != nil {
		return 0, err
	}
	log.Info().Int("rows", len(rows)).Str("out", a.cfg.OutDir).Msg("wrote artifacts")
	return len(rows), nil
}
