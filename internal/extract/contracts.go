package extract

// PreExtractor is the injectable pattern-matching capability that seeds
// fields before the model call. Pure and failure-free: fields without a
// match are omitted from the returned map.
type PreExtractor interface {
	FindFields(text string) map[string]string
}

// Diagnostic keys attached to generic-fallback results so callers can see
// what went wrong without the call failing.
const (
	KeyRawText        = "raw_text"
	KeyRawModelOutput = "raw_model_output"
	KeyError          = "error"
)
