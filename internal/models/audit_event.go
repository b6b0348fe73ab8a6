package models

import "time"

// AuditEvent is a single audit trail entry for a state-mutating action.
type AuditEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Method     string    `json:"method"` // POST | DELETE
	Action     string    `json:"action"` // e.g. "content.delete"
	Actor      string    `json:"actor,omitempty"`
}
