package constants

// RunStatus is the canonical status for rows in pull_run.
type RunStatus string

// Stable values (store these exact strings in DB).
const (
	RunStatusRunning RunStatus = "RUNNING" // pull in progress
	RunStatusOK      RunStatus = "OK"      // all pages fetched and stored
	RunStatusFailed  RunStatus = "FAILED"  // terminal failure
)
