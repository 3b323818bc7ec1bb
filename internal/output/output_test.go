package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/listingparse/internal/record"
)

func TestWrite_CSVRendersNAForAbsentValues(t *testing.T) {
	dir := t.TempDir()
	rating := 4.3
	rows := []record.Row{{
		BusinessName:  strPtr("Cafe X"),
		OverallRating: &rating,
		Text:          strPtr("Great espresso, cozy corner seats."),
	}}
	w := &Writer{Dir: dir}
	if err := w.Write(rows); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, CSVName))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(recs))
	}
	wantHeader := "business_name,categories,city_region,price_range,overall_rating,total_reviews,reviewer_handle,reviewer_location,star_rating,date,review_text"
	if got := strings.Join(recs[0], ","); got != wantHeader {
		t.Fatalf("header = %q, want %q", got, wantHeader)
	}
	row := recs[1]
	if row[0] != "Cafe X" || row[4] != "4.3" {
		t.Fatalf("populated fields wrong: %v", row)
	}
	for _, idx := range []int{1, 2, 3, 5, 6, 7, 8, 9} {
		if row[idx] != "N/A" {
			t.Fatalf("column %d = %q, want N/A", idx, row[idx])
		}
	}
}

func TestWrite_JSONRendersNullForAbsentValues(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}
	if err := w.Write([]record.Row{{Text: strPtr("Just the text.")}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, JSONName))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 row, got %d", len(decoded))
	}
	if v, present := decoded[0]["business_name"]; !present || v != nil {
		t.Fatalf("absent field should serialize as explicit null, got %v (present=%v)", v, present)
	}
	if decoded[0]["review_text"] != "Just the text." {
		t.Fatalf("review_text = %v", decoded[0]["review_text"])
	}
}

func TestWrite_EmptyRunProducesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}
	if err := w.Write(nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, JSONName))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if strings.TrimSpace(string(b)) != "[]" {
		t.Fatalf("empty run should write [], got %q", string(b))
	}
}

func TestWrite_CreatesOutputDirAndPDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := &Writer{Dir: dir, PDF: true}
	rows := []record.Row{{
		BusinessName: strPtr("Cafe X"),
		Reviewer:     strPtr("alice"),
		Text:         strPtr("Great espresso, cozy corner seats."),
	}}
	if err := w.Write(rows); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for _, name := range []string{JSONName, CSVName, PDFName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected artifact %s: %v", name, err)
		}
	}
}

func strPtr(s string) *string { return &s }
