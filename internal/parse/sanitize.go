package parse

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/docfields/internal/schema"
)

// Sanitize coerces a decoded reply toward the schema:
// - Removes unknown keys (forward compatibility with chattier models)
// - Drops null and explicitly-empty values so they read as absent
// - Coerces numbers to strings for string-kinded fields, wraps single values
//   into lists, stringifies map values
// Values that cannot feasibly be coerced are left in place for the strict
// validator to reject, so a malformed field fails the record rather than
// being silently discarded.
func Sanitize(m map[string]any, s schema.Schema, logger *slog.Logger) (map[string]any, []string) {
	if logger == nil {
		logger = slog.Default()
	}

	cleaned := make(map[string]any, len(m))
	var dropped []string

	for k, v := range m {
		f, known := s.Field(k)
		if !known {
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		if v == nil {
			dropped = append(dropped, k+"(null)")
			continue
		}

		switch f.Kind {
		case schema.KindString:
			switch t := v.(type) {
			case string:
				if s := strings.TrimSpace(t); s != "" {
					cleaned[k] = s
				} else {
					dropped = append(dropped, k+"(empty)")
				}
			case float64:
				cleaned[k] = formatNumber(t)
			default:
				cleaned[k] = v
			}

		case schema.KindStringList:
			switch t := v.(type) {
			case string:
				if s := strings.TrimSpace(t); s != "" {
					cleaned[k] = []any{s}
				} else {
					dropped = append(dropped, k+"(empty)")
				}
			case []any:
				out := make([]any, 0, len(t))
				for _, el := range t {
					switch e := el.(type) {
					case string:
						if s := strings.TrimSpace(e); s != "" {
							out = append(out, s)
						}
					case float64:
						out = append(out, formatNumber(e))
					case nil:
						// skip
					default:
						out = append(out, el)
					}
				}
				if len(out) > 0 {
					cleaned[k] = out
				} else {
					dropped = append(dropped, k+"(empty)")
				}
			default:
				cleaned[k] = v
			}

		case schema.KindObjectList:
			switch t := v.(type) {
			case map[string]any:
				cleaned[k] = []any{t}
			case []any:
				if len(t) > 0 {
					cleaned[k] = t
				} else {
					dropped = append(dropped, k+"(empty)")
				}
			default:
				cleaned[k] = v
			}

		case schema.KindStringMap:
			t, ok := v.(map[string]any)
			if !ok {
				cleaned[k] = v
				continue
			}
			out := make(map[string]any, len(t))
			for mk, mv := range t {
				switch e := mv.(type) {
				case string:
					if s := strings.TrimSpace(e); s != "" {
						out[mk] = s
					}
				case float64:
					out[mk] = formatNumber(e)
				case nil:
					// skip
				default:
					out[mk] = mv
				}
			}
			if len(out) > 0 {
				cleaned[k] = out
			} else {
				dropped = append(dropped, k+"(empty)")
			}
		}
	}

	if len(dropped) > 0 {
		logger.Warn("parse.sanitize",
			"doc_type", string(s.DocType),
			"dropped", dropped,
		)
	}
	return cleaned, dropped
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
