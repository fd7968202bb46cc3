package llm

import "context"

// Generator is the single model capability the extraction strategies depend
// on: one synchronous completion, no retry, no streaming. An empty model
// argument lets the client pick its configured default; strategies pass a
// hint when they want the stronger (or cheaper) tier.
type Generator interface {
	Generate(ctx context.Context, systemMsg, userMsg, model string) (string, error)
}
