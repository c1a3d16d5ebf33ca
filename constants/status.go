package constants

// JobStatus is the canonical status for rows in extraction_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusDraft      JobStatus = "DRAFT"      // created, no run accepted yet
	JobStatusProcessing JobStatus = "PROCESSING" // a run is in flight
	JobStatusComplete   JobStatus = "COMPLETE"   // terminal success with results payload
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure with error payload
)
