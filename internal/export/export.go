// Package export flattens batch extraction results into review-friendly
// XLSX or CSV output.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Result is one document's extraction outcome, flattened for export.
type Result struct {
	Source  string
	DocType string
	OK      bool
	Fields  map[string]any
}

var headers = []string{"Source", "Document Type", "Status", "Field Count", "Fields (JSON)"}

// ResultsXLSX returns an XLSX workbook (as bytes) for a batch of results.
func ResultsXLSX(results []Result) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Source)
		write(2, r.DocType)
		write(3, status(r))
		write(4, len(r.Fields))
		write(5, fieldsJSON(r))
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 40) // source
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "E", "E", 80) // fields

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV streams the same flat rows as CSV.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, r := range results {
		rec := []string{
			r.Source,
			r.DocType,
			status(r),
			fmt.Sprintf("%d", len(r.Fields)),
			fieldsJSON(r),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func status(r Result) string {
	if r.OK {
		return "OK"
	}
	return "NOT_AVAILABLE"
}

func fieldsJSON(r Result) string {
	if len(r.Fields) == 0 {
		return ""
	}
	b, err := json.Marshal(r.Fields)
	if err != nil {
		return ""
	}
	return string(b)
}
