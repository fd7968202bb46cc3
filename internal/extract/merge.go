package extract

import (
	"strings"

	"github.com/joseph-ayodele/docfields/internal/schema"
)

// merge overlays the parsed model record on the seed. The model wins for any
// field it returned; seed values survive where the model omitted the field.
func merge(seed, model map[string]any) map[string]any {
	out := make(map[string]any, len(seed)+len(model))
	for k, v := range seed {
		out[k] = v
	}
	for k, v := range model {
		out[k] = v
	}
	return out
}

// prune keeps only fields the schema declares, with non-absent values.
// Pruning is total: no caller ever sees an absent-valued or undeclared field.
func prune(rec map[string]any, s schema.Schema) map[string]any {
	out := make(map[string]any, len(rec))
	for _, f := range s.Fields {
		v, ok := rec[f.Name]
		if !ok || absent(v) {
			continue
		}
		out[f.Name] = v
	}
	return out
}

func absent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	case map[string]string:
		return len(t) == 0
	}
	return false
}
