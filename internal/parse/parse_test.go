package parse

import (
	"encoding/json"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/joseph-ayodele/docfields/internal/schema"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "json fence stripped",
			in:   "```json\n{\"a\": 1}\n```",
			want: "\n{\"a\": 1}\n",
		},
		{
			name: "no fence passes through",
			in:   "{\"a\": 1}",
			want: "{\"a\": 1}",
		},
		{
			name: "trailing fence without leading fence is not stripped",
			in:   "{\"a\": 1}\n```",
			want: "{\"a\": 1}\n```",
		},
		{
			name: "other language tag is not stripped",
			in:   "```yaml\na: 1\n```",
			want: "```yaml\na: 1\n```",
		},
		{
			name: "leading fence without trailing fence",
			in:   "```json\n{\"a\": 1}",
			want: "\n{\"a\": 1}",
		},
		{
			name: "surrounding whitespace trimmed first",
			in:   "  \n```json\n{}\n```  ",
			want: "\n{}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInvalidJSON(t *testing.T) {
	raw := "not json at all"
	rec, pf := Parse(raw, schema.Invoice, testLogger())
	if rec != nil {
		t.Fatalf("expected nil record, got %v", rec)
	}
	if pf == nil {
		t.Fatal("expected a failure")
	}
	if pf.Reason != ReasonInvalidJSON {
		t.Errorf("reason = %s, want %s", pf.Reason, ReasonInvalidJSON)
	}
	if pf.RawText != raw {
		t.Errorf("RawText = %q, want the original reply", pf.RawText)
	}
}

func TestParseTopLevelArrayIsSchemaMismatch(t *testing.T) {
	_, pf := Parse("[1, 2, 3]", schema.Invoice, testLogger())
	if pf == nil || pf.Reason != ReasonSchemaMismatch {
		t.Fatalf("expected schema_mismatch, got %v", pf)
	}
}

func TestParseUnknownKeysDropped(t *testing.T) {
	rec, pf := Parse(`{"invoice_number": "INV-1", "bogus_key": "x"}`, schema.Invoice, testLogger())
	if pf != nil {
		t.Fatalf("unexpected failure: %v", pf)
	}
	want := map[string]any{"invoice_number": "INV-1"}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("record = %v, want %v", rec, want)
	}
}

func TestParseCoercions(t *testing.T) {
	t.Run("number to string", func(t *testing.T) {
		rec, pf := Parse(`{"total_amount": 1234.5}`, schema.Invoice, testLogger())
		if pf != nil {
			t.Fatalf("unexpected failure: %v", pf)
		}
		if rec["total_amount"] != "1234.5" {
			t.Errorf("total_amount = %v, want \"1234.5\"", rec["total_amount"])
		}
	})

	t.Run("null and empty become absent", func(t *testing.T) {
		rec, pf := Parse(`{"invoice_number": "A", "currency": null, "vendor_name": "  ", "items": []}`, schema.Invoice, testLogger())
		if pf != nil {
			t.Fatalf("unexpected failure: %v", pf)
		}
		want := map[string]any{"invoice_number": "A"}
		if !reflect.DeepEqual(rec, want) {
			t.Errorf("record = %v, want %v", rec, want)
		}
	})

	t.Run("single string wrapped into list", func(t *testing.T) {
		rec, pf := Parse(`{"parties": "Acme Corp"}`, schema.ContractSummary, testLogger())
		if pf != nil {
			t.Fatalf("unexpected failure: %v", pf)
		}
		want := []any{"Acme Corp"}
		if !reflect.DeepEqual(rec["parties"], want) {
			t.Errorf("parties = %v, want %v", rec["parties"], want)
		}
	})

	t.Run("single object wrapped into list", func(t *testing.T) {
		rec, pf := Parse(`{"items": {"description": "widget", "amount": "9.99"}}`, schema.Invoice, testLogger())
		if pf != nil {
			t.Fatalf("unexpected failure: %v", pf)
		}
		items, ok := rec["items"].([]any)
		if !ok || len(items) != 1 {
			t.Fatalf("items = %v, want one-element list", rec["items"])
		}
	})

	t.Run("map values stringified", func(t *testing.T) {
		rec, pf := Parse(`{"employers_liability_limits": {"Each Accident": 100000}}`, schema.WorkersComp, testLogger())
		if pf != nil {
			t.Fatalf("unexpected failure: %v", pf)
		}
		limits, ok := rec["employers_liability_limits"].(map[string]any)
		if !ok {
			t.Fatalf("limits = %T, want map", rec["employers_liability_limits"])
		}
		if limits["Each Accident"] != "100000" {
			t.Errorf("limit = %v, want \"100000\"", limits["Each Accident"])
		}
	})
}

func TestParseSchemaMismatch(t *testing.T) {
	raw := `{"invoice_number": {"nested": true}}`
	_, pf := Parse(raw, schema.Invoice, testLogger())
	if pf == nil || pf.Reason != ReasonSchemaMismatch {
		t.Fatalf("expected schema_mismatch, got %v", pf)
	}
	if pf.RawText != raw {
		t.Errorf("RawText = %q, want the original reply", pf.RawText)
	}
}

func TestParseIdempotent(t *testing.T) {
	raw := `{"invoice_number": "INV-9", "total_amount": 12.5, "items": [{"description": "a", "amount": "1"}], "junk": null}`
	first, pf := Parse(raw, schema.Invoice, testLogger())
	if pf != nil {
		t.Fatalf("unexpected failure: %v", pf)
	}

	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	second, pf := Parse(string(encoded), schema.Invoice, testLogger())
	if pf != nil {
		t.Fatalf("reparse failed: %v", pf)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse not idempotent: first %v, second %v", first, second)
	}
}

func TestGeneric(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		m, err := Generic(`{"a": 1, "b": ["x"]}`)
		if err != nil {
			t.Fatal(err)
		}
		if m["a"] != float64(1) {
			t.Errorf("a = %v, want 1", m["a"])
		}
	})

	t.Run("almost-json repaired", func(t *testing.T) {
		m, err := Generic(`{name: 'Acme', total: 12,}`)
		if err != nil {
			t.Fatalf("expected repair to succeed: %v", err)
		}
		if m["name"] != "Acme" {
			t.Errorf("name = %v, want Acme", m["name"])
		}
	})

	t.Run("prose fails", func(t *testing.T) {
		if _, err := Generic("here is the summary you asked for"); err == nil {
			t.Fatal("expected an error for prose")
		}
	})
}

func TestParseNeverReturnsUndeclaredFields(t *testing.T) {
	raw := `{"store_name": "Deli", "merchant_code": "X9", "total_amount": "5.00"}`
	rec, pf := Parse(raw, schema.Receipt, testLogger())
	if pf != nil {
		t.Fatalf("unexpected failure: %v", pf)
	}
	for k := range rec {
		if _, ok := schema.Receipt.Field(k); !ok {
			t.Errorf("undeclared field %q in record", k)
		}
	}
	if strings.TrimSpace(rec["store_name"].(string)) != "Deli" {
		t.Errorf("store_name = %v", rec["store_name"])
	}
}
