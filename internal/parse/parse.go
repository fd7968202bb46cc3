// Package parse turns raw model replies into schema-conforming records. It
// never panics and never leaks a Go error to the extraction strategies: every
// failure path yields a typed Failure carrying the offending raw text.
package parse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/joseph-ayodele/docfields/internal/schema"
)

// Reason classifies a parse failure.
type Reason string

const (
	ReasonInvalidJSON    Reason = "invalid_json"
	ReasonSchemaMismatch Reason = "schema_mismatch"
)

// Failure is the typed result for anything the parser could not turn into a
// valid record. RawText is the full reply; callers truncate for logging only.
type Failure struct {
	Reason  Reason
	RawText string
	Cause   error
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("parse failure (%s): %v", f.Reason, f.Cause)
	}
	return fmt.Sprintf("parse failure (%s)", f.Reason)
}

// Parse strips formatting artifacts from a raw model reply, decodes it as
// JSON, and coerces it into the given schema. Unknown keys are dropped,
// feasible coercions (numbers to strings, single values to lists) are
// applied, and null/empty values become absent. The cleaned record is then
// strictly validated; anything still non-conforming fails as a whole.
func Parse(raw string, s schema.Schema, logger *slog.Logger) (map[string]any, *Failure) {
	if logger == nil {
		logger = slog.Default()
	}

	text := StripFences(raw)

	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, &Failure{Reason: ReasonInvalidJSON, RawText: raw, Cause: err}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &Failure{
			Reason:  ReasonSchemaMismatch,
			RawText: raw,
			Cause:   fmt.Errorf("top-level JSON value is %T, want object", v),
		}
	}

	cleaned, dropped := Sanitize(m, s, logger)

	encoded, err := json.Marshal(cleaned)
	if err != nil {
		return nil, &Failure{Reason: ReasonSchemaMismatch, RawText: raw, Cause: err}
	}
	if err := ValidateJSONAgainstSchema(schema.BuildJSONSchema(s), encoded); err != nil {
		logger.Warn("parse.schema_mismatch",
			"doc_type", string(s.DocType),
			"dropped", dropped,
			"error", err,
		)
		return nil, &Failure{Reason: ReasonSchemaMismatch, RawText: raw, Cause: err}
	}
	return cleaned, nil
}

// StripFences removes a leading ```json fence and, when one was present, a
// trailing ``` fence. A trailing fence without the leading pattern is left
// alone, as are fences with other language tags. Known limitation, kept
// deliberately narrow.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
		if strings.HasSuffix(s, "```") {
			s = s[:len(s)-len("```")]
		}
	}
	return s
}

// Generic decodes a schema-less reply for the fallback strategy: direct JSON
// decode first, then one jsonrepair pass for almost-JSON (single quotes,
// unquoted keys, trailing commas).
func Generic(raw string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err == nil {
		return m, nil
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return nil, fmt.Errorf("repair json: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &m); err != nil {
		return nil, fmt.Errorf("decode repaired json: %w", err)
	}
	return m, nil
}
