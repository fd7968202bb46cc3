// Package rules implements pattern-based pre-extraction: cheap regex passes
// that seed (and, when the model is unavailable, stand in for) the LLM
// extraction of invoices and receipts. Finders are pure; a field that does
// not match is simply omitted from the result.
package rules

import (
	"regexp"
	"strings"
)

var (
	reInvoiceNumber = regexp.MustCompile(`(?i)(invoice|inv|bill)\s*#?[:\s]*([A-Za-z0-9-]+)`)
	reInvoiceDate   = regexp.MustCompile(`(?i)(date|invoice date|bill date)[:\s]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`)
	reDueDate       = regexp.MustCompile(`(?i)(due date)[:\s]*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4})`)
	reTotalAmount   = regexp.MustCompile(`(?i)(total|amount due|balance due)[:\s]*[A-Z$€£]*\s*([\d.,]+)`)
	reCurrency      = regexp.MustCompile(`(?i)(total|amount due|balance due)[:\s]*([A-Z$€£]+)\s*[\d.,]+`)
	reStoreName     = regexp.MustCompile(`(?i)(store|shop|merchant)\s*name[:\s]*([A-Za-z\s]+)`)
)

// InvoiceFinder seeds invoice fields. CurrencySymbol is used when a total
// matches but no currency symbol does; whether that default is right outside
// US locales is an open question, so it is a knob rather than a constant.
type InvoiceFinder struct {
	CurrencySymbol string
}

func (f InvoiceFinder) FindFields(text string) map[string]string {
	fields := make(map[string]string)

	if m := reInvoiceNumber.FindStringSubmatch(text); m != nil {
		fields["invoice_number"] = strings.TrimSpace(m[2])
	}
	if m := reInvoiceDate.FindStringSubmatch(text); m != nil {
		fields["invoice_date"] = strings.TrimSpace(m[2])
	}
	if m := reDueDate.FindStringSubmatch(text); m != nil {
		fields["due_date"] = strings.TrimSpace(m[2])
	}
	if m := reTotalAmount.FindStringSubmatch(text); m != nil {
		fields["total_amount"] = strings.TrimSpace(strings.ReplaceAll(m[2], ",", ""))
		if cm := reCurrency.FindStringSubmatch(text); cm != nil {
			fields["currency"] = strings.TrimSpace(cm[2])
		} else {
			fields["currency"] = f.currencySymbol()
		}
	}
	return fields
}

func (f InvoiceFinder) currencySymbol() string {
	if f.CurrencySymbol != "" {
		return f.CurrencySymbol
	}
	return "$"
}

// ReceiptFinder seeds receipt fields.
type ReceiptFinder struct{}

func (ReceiptFinder) FindFields(text string) map[string]string {
	fields := make(map[string]string)
	if m := reStoreName.FindStringSubmatch(text); m != nil {
		fields["store_name"] = strings.TrimSpace(m[2])
	}
	return fields
}
