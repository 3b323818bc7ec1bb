// Package output serializes assembled rows into the run's artifact
// directory: a human-readable JSON array, a fixed-column CSV, and an
// optional one-page PDF summary.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/listingparse/internal/record"
)

const (
	JSONName = "parsed.json"
	CSVName  = "parsed.csv"
	PDFName  = "summary.pdf"
)

// naToken renders absent values in CSV context. JSON context uses null.
const naToken = "N/A"

// csvHeader is the fixed column order of the tabular artifact.
var csvHeader = []string{
	"business_name",
	"categories",
	"city_region",
	"price_range",
	"overall_rating",
	"total_reviews",
	"reviewer_handle",
	"reviewer_location",
	"star_rating",
	"date",
	"review_text",
}

// Writer writes run artifacts into Dir, creating it when missing. Any write
// failure here is fatal to the run; everything upstream degrades instead.
type Writer struct {
	Dir string
	PDF bool
}

// Write persists all artifacts for the given rows.
func (w *Writer) Write(rows []record.Row) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	if err := w.writeJSON(rows); err != nil {
		return err
	}
	if err := w.writeCSV(rows); err != nil {
		return err
	}
	if w.PDF {
		if err := writeSummaryPDF(filepath.Join(w.Dir, PDFName), rows); err != nil {
			return fmt.Errorf("write pdf summary: %w", err)
		}
	}
	log.Debug().Int("rows", len(rows)).Str("dir", w.Dir).Msg("artifacts written")
	return nil
}

func (w *Writer) writeJSON(rows []record.Row) error {
	if rows == nil {
		// An empty run still produces a well-formed array, not null.
		rows = []record.Row{}
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal rows: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(filepath.Join(w.Dir, JSONName), b, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(rows []record.Row) error {
	f, err := os.Create(filepath.Join(w.Dir, CSVName))
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			naString(r.BusinessName),
			naString(r.Categories),
			naString(r.CityRegion),
			naString(r.PriceRange),
			naFloat(r.OverallRating),
			naInt(r.TotalReviews),
			naString(r.Reviewer),
			naString(r.ReviewerLocation),
			naFloat(r.Stars),
			naString(r.Date),
			naString(r.Text),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func naString(v *string) string {
	if v == nil {
		return naToken
	}
	return *v
}

func naFloat(v *float64) string {
	if v == nil {
		return naToken
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func naInt(v *int) string {
	if v == nil {
		return naToken
	}
	return strconv.Itoa(*v)
}
