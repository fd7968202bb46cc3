package constants

// JobStatus is the canonical status for rows in the extraction audit log.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusOK           JobStatus = "OK"            // extraction produced a record
	JobStatusNotAvailable JobStatus = "NOT_AVAILABLE" // no model configured and no fallback for the type
)
