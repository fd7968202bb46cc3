package constants

// DocType is the caller-supplied tag that selects a schema and strategy.
// Matching is exact and case-sensitive; callers must pass canonical tags.
type DocType string

const (
	Invoice         DocType = "invoice"
	Receipt         DocType = "receipt"
	ContractSummary DocType = "contract_summary"
	WorkersComp     DocType = "workers_comp"
)

var allDocTypes = []DocType{
	Invoice,
	Receipt,
	ContractSummary,
	WorkersComp,
}

func AsStringSlice() []string {
	result := make([]string, len(allDocTypes))
	for i, dt := range allDocTypes {
		result[i] = string(dt)
	}
	return result
}
