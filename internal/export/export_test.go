package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

var sample = []Result{
	{
		Source:  "inv-001.txt",
		DocType: "invoice",
		OK:      true,
		Fields:  map[string]any{"invoice_number": "INV-1", "currency": "USD"},
	},
	{
		Source:  "contract-7.txt",
		DocType: "contract_summary",
		OK:      false,
	},
}

func TestResultsXLSX(t *testing.T) {
	b, err := ResultsXLSX(sample)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Extractions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Source" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "inv-001.txt" || rows[1][2] != "OK" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][2] != "NOT_AVAILABLE" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sample); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Source,") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(out, "inv-001.txt") || !strings.Contains(out, "NOT_AVAILABLE") {
		t.Errorf("csv missing rows:\n%s", out)
	}
}
