package constants

// Model hints per cost/accuracy tradeoff. Invoices, receipts and the generic
// fallback run on the default model; workers comp policies are long and dense
// enough to warrant the stronger one.
const (
	DefaultModel = "gpt-4o-mini"
	StrongModel  = "gpt-4o"
)

// LogSnippetLen caps raw model output in log records. Returned values are
// never truncated, only what we log.
const LogSnippetLen = 200
