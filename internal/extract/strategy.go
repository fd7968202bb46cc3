package extract

import (
	"context"
	"errors"
	"time"

	"github.com/joseph-ayodele/docfields/constants"
	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/parse"
	"github.com/joseph-ayodele/docfields/internal/schema"
)

// extractWithSchema is the shared per-type strategy. hasFallback declares
// whether the type tolerates running without the model: invoice and receipt
// return their (possibly empty) seed record, contract summary and workers
// comp return not-available.
func (e *Extractor) extractWithSchema(
	ctx context.Context,
	rid, text string,
	sch schema.Schema,
	seeder PreExtractor,
	model string,
	hasFallback bool,
) (map[string]any, bool) {
	start := time.Now()

	seed := make(map[string]any)
	if seeder != nil {
		for k, v := range seeder.FindFields(text) {
			seed[k] = v
		}
	}
	if len(seed) > 0 {
		e.log.Info("extract.seed", "req_id", rid, "doc_type", string(sch.DocType), "fields", len(seed))
	}

	fallback := func() (map[string]any, bool) {
		if !hasFallback {
			return nil, false
		}
		return prune(seed, sch), true
	}

	if e.gen == nil {
		e.log.Warn("extract.model_unavailable", "req_id", rid, "doc_type", string(sch.DocType))
		return fallback()
	}

	sys := systemPrompt(sch)
	user := userPrompt(sch, text)

	out, err := e.gen.Generate(ctx, sys, user, model)
	if err != nil {
		if errors.Is(err, common.ErrModelUnavailable) {
			e.log.Warn("extract.model_unavailable", "req_id", rid, "doc_type", string(sch.DocType))
		} else {
			e.log.Error("extract.generate_error",
				"req_id", rid, "doc_type", string(sch.DocType), "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return fallback()
	}

	rec, pf := parse.Parse(out, sch, e.log)
	if pf != nil {
		e.log.Error("extract.parse_failure",
			"req_id", rid, "doc_type", string(sch.DocType),
			"reason", string(pf.Reason),
			"raw", truncate(pf.RawText, constants.LogSnippetLen),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fallback()
	}

	result := prune(merge(seed, rec), sch)
	e.log.Info("extract.ok",
		"req_id", rid, "doc_type", string(sch.DocType),
		"fields", len(result),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, true
}

// extractGeneric is the open-ended arm for unregistered document types.
// It never errors: a reply that will not parse comes back as a diagnostic
// record carrying the source text and the raw model output.
func (e *Extractor) extractGeneric(ctx context.Context, rid, text, docType string) (map[string]any, bool) {
	start := time.Now()

	if e.gen == nil {
		e.log.Warn("extract.generic.model_unavailable", "req_id", rid, "doc_type", docType)
		return nil, false
	}

	sys, user := genericPrompt(docType, text)
	out, err := e.gen.Generate(ctx, sys, user, e.cfg.DefaultModel)
	if err != nil {
		if errors.Is(err, common.ErrModelUnavailable) {
			e.log.Warn("extract.generic.model_unavailable", "req_id", rid, "doc_type", docType)
			return nil, false
		}
		e.log.Error("extract.generic.generate_error",
			"req_id", rid, "doc_type", docType, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return map[string]any{KeyRawText: text, KeyError: err.Error()}, true
	}

	rec, perr := parse.Generic(out)
	if perr != nil {
		e.log.Warn("extract.generic.invalid_json",
			"req_id", rid, "doc_type", docType,
			"raw", truncate(out, constants.LogSnippetLen),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return map[string]any{KeyRawText: text, KeyRawModelOutput: out}, true
	}

	e.log.Info("extract.generic.ok",
		"req_id", rid, "doc_type", docType,
		"keys", len(rec),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, true
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
