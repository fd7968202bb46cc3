// Package extract routes (text, document type) pairs to type-specific
// extraction strategies: seed from pattern rules where available, build a
// schema-grounded prompt, call the model once, tolerantly parse the reply,
// merge over the seed and prune absent fields. Every failure degrades to the
// seed record, a not-available signal, or a diagnostic payload; nothing the
// model or parser does can crash a call.
package extract

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/llm"
	"github.com/joseph-ayodele/docfields/internal/schema"
)

// Config holds strategy wiring. Seeders may be nil; invoice and receipt then
// run model-only but still fall back to an empty (fully pruned) record.
type Config struct {
	DefaultModel  string
	StrongModel   string
	InvoiceSeeder PreExtractor
	ReceiptSeeder PreExtractor
}

// Extractor is safe for concurrent use: it holds no mutable state across
// calls, only the read-only wiring below.
type Extractor struct {
	gen llm.Generator // nil when no model capability is configured
	cfg Config
	log *slog.Logger
}

func New(gen llm.Generator, cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = constants.DefaultModel
	}
	if cfg.StrongModel == "" {
		cfg.StrongModel = constants.StrongModel
	}
	return &Extractor{gen: gen, cfg: cfg, log: logger}
}

// ExtractData dispatches to the strategy for docType and returns the pruned
// record. ok=false signals "no extraction possible": an unconfigured or
// failing model for a type that declares no non-model fallback. Unregistered
// tags take the generic arm, never an error.
func (e *Extractor) ExtractData(ctx context.Context, text, docType string) (map[string]any, bool) {
	rid := uuid.New().String()
	e.log.Info("extract.route", "req_id", rid, "doc_type", docType, "text_len", len(text))

	switch constants.DocType(docType) {
	case constants.Invoice:
		return e.extractWithSchema(ctx, rid, text, schema.Invoice, e.cfg.InvoiceSeeder, e.cfg.DefaultModel, true)
	case constants.Receipt:
		return e.extractWithSchema(ctx, rid, text, schema.Receipt, e.cfg.ReceiptSeeder, e.cfg.DefaultModel, true)
	case constants.ContractSummary:
		return e.extractWithSchema(ctx, rid, text, schema.ContractSummary, nil, e.cfg.DefaultModel, false)
	case constants.WorkersComp:
		return e.extractWithSchema(ctx, rid, text, schema.WorkersComp, nil, e.cfg.StrongModel, false)
	default:
		e.log.Warn("extract.unregistered_type", "req_id", rid, "doc_type", docType)
		return e.extractGeneric(ctx, rid, text, docType)
	}
}
