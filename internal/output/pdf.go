package output

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/listingparse/internal/record"
)

// pdfMaxRows caps how many review lines the one-page summary renders.
const pdfMaxRows = 10

// writeSummaryPDF renders a minimal one-page run summary: the business
// header, the surviving row count, and the first rows. This is intentionally
// simple and not a full tabular layout.
func writeSummaryPDF(outPath string, rows []record.Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.AddPage()

	name := "(unknown business)"
	if len(rows) > 0 && rows[0].BusinessName != nil {
		name = *rows[0].BusinessName
	}
	pdf.CellFormat(0, 8, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	if len(rows) > 0 {
		header := fmt.Sprintf("%d reviews extracted", len(rows))
		if r := rows[0]; r.OverallRating != nil {
			header += fmt.Sprintf(" · overall %.1f", *r.OverallRating)
		}
		pdf.CellFormat(0, 6, header, "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "no reviews extracted", "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for i, r := range rows {
		if i >= pdfMaxRows {
			pdf.MultiCell(0, 5, fmt.Sprintf("… and %d more rows", len(rows)-pdfMaxRows), "", "L", false)
			break
		}
		line := ""
		if r.Reviewer != nil {
			line += *r.Reviewer
		}
		if r.Date != nil {
			line += " — " + *r.Date
		}
		if r.Stars != nil {
			line += fmt.Sprintf(" (%.1f)", *r.Stars)
		}
		if r.Text != nil {
			text := *r.Text
			if len(text) > 120 {
				text = text[:120] + "…"
			}
			line += ": " + text
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
		pdf.Ln(1)
	}

	return pdf.OutputFileAndClose(outPath)
}
