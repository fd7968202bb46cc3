package schema

// BuildJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We embed it in the prompt for grounding and use it locally to validate the
// model reply. additionalProperties stays false: unknown keys are stripped
// before validation, so anything left over is a mismatch.
func BuildJSONSchema(s Schema) map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = propFor(f.Kind)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func propFor(k FieldKind) map[string]any {
	switch k {
	case KindStringList:
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "minLength": 1},
		}
	case KindObjectList:
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		}
	case KindStringMap:
		return map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		}
	default:
		return map[string]any{"type": "string", "minLength": 1}
	}
}
