package schema

import (
	"github.com/joseph-ayodele/docfields/constants"
)

// FieldKind is the semantic type a schema declares for a field.
type FieldKind int

const (
	KindString FieldKind = iota
	KindStringList
	KindObjectList
	KindStringMap
)

// Field declares one optionally-present field. Hint is prompt-only guidance
// (date formats, list shapes) and never affects validation.
type Field struct {
	Name string
	Kind FieldKind
	Hint string
}

// Schema is the fixed field declaration for one document type. Schemas are
// constant data: defined once below, shared by every extraction call.
type Schema struct {
	DocType constants.DocType
	Label   string // "Invoice", "Receipt", ... used in prompt headings
	Domain  string // completes "specialized in <Domain>"
	Fields  []Field
}

func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var Invoice = Schema{
	DocType: constants.Invoice,
	Label:   "Invoice",
	Domain:  "extracting structured data from invoices",
	Fields: []Field{
		{Name: "invoice_number", Kind: KindString},
		{Name: "invoice_date", Kind: KindString},
		{Name: "due_date", Kind: KindString},
		{Name: "vendor_name", Kind: KindString},
		{Name: "customer_name", Kind: KindString},
		{Name: "total_amount", Kind: KindString},
		{Name: "currency", Kind: KindString},
		{Name: "items", Kind: KindObjectList, Hint: "a list of objects with 'description' and 'amount'"},
	},
}

var Receipt = Schema{
	DocType: constants.Receipt,
	Label:   "Receipt",
	Domain:  "extracting structured data from receipts",
	Fields: []Field{
		{Name: "store_name", Kind: KindString},
		{Name: "transaction_date", Kind: KindString},
		{Name: "total_amount", Kind: KindString},
		{Name: "currency", Kind: KindString},
		{Name: "items", Kind: KindObjectList, Hint: "a list of objects with 'description' and 'amount'"},
	},
}

var ContractSummary = Schema{
	DocType: constants.ContractSummary,
	Label:   "Contract",
	Domain:  "summarizing key aspects of legal contracts",
	Fields: []Field{
		{Name: "contract_title", Kind: KindString},
		{Name: "parties", Kind: KindStringList, Hint: "a list of names"},
		{Name: "effective_date", Kind: KindString},
		{Name: "termination_clause_summary", Kind: KindString},
		{Name: "governing_law", Kind: KindString},
	},
}

var WorkersComp = Schema{
	DocType: constants.WorkersComp,
	Label:   "Workers Compensation Policy",
	Domain:  "extracting structured data from Workers Compensation Insurance Policies",
	Fields: []Field{
		{Name: "name_insured", Kind: KindString, Hint: "the primary name insured on the policy"},
		{Name: "other_named_insured", Kind: KindStringList, Hint: "as a list"},
		{Name: "mailing_address", Kind: KindString},
		{Name: "policy_number", Kind: KindString},
		{Name: "policy_period_start", Kind: KindString, Hint: "format MM/DD/YYYY"},
		{Name: "policy_period_end", Kind: KindString, Hint: "format MM/DD/YYYY"},
		{Name: "issuing_company", Kind: KindString},
		{Name: "premium", Kind: KindString, Hint: "the total premium for the policy"},
		{Name: "paid_in_full_discount", Kind: KindString},
		{Name: "miscellaneous_premium", Kind: KindString},
		{Name: "location", Kind: KindString},
		{Name: "general_liability_limits", Kind: KindStringMap, Hint: "a dictionary of limit types and values"},
		{Name: "employers_liability_limits", Kind: KindStringMap, Hint: "a dictionary of limit types and values"},
		{Name: "deductible", Kind: KindString},
		{Name: "terrorism_coverage", Kind: KindString, Hint: "e.g. 'Included' or 'Excluded'"},
		{Name: "exclusions_summary", Kind: KindString, Hint: "a brief summary"},
		{Name: "additional_interest", Kind: KindStringList, Hint: "as a list"},
		{Name: "forms_and_endorsements", Kind: KindStringList, Hint: "as a list"},
		{Name: "business_classification", Kind: KindString},
		{Name: "retro_date", Kind: KindString},
		{Name: "prior_and_pending_date", Kind: KindString},
		{Name: "continuity_date", Kind: KindString},
		{Name: "underlying_insurance", Kind: KindString},
	},
}

var registry = []Schema{Invoice, Receipt, ContractSummary, WorkersComp}

// All returns the registered schemas in registration order.
func All() []Schema {
	out := make([]Schema, len(registry))
	copy(out, registry)
	return out
}

// ForDocType resolves a document type tag to its schema. Exact match only.
func ForDocType(dt constants.DocType) (Schema, bool) {
	for _, s := range registry {
		if s.DocType == dt {
			return s, true
		}
	}
	return Schema{}, false
}
