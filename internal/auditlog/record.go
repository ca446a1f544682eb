package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Entry represents one persisted mutation against the backend: who ran
// which command on which record, and how it went. Entries are written
// locally so destructive admin actions remain reviewable after the fact.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Command    string    `json:"command"`
	Args       string    `json:"args,omitempty"`
	Entity     string    `json:"entity,omitempty"`
	ResourceID string    `json:"resource_id,omitempty"`
	Resource   string    `json:"resource,omitempty"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}
