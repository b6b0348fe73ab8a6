package models

import "time"

// Field length limits enforced at write time.
const (
	MaxTitleLen    = 100
	MaxCategoryLen = 50
)

// Content is a single managed content record.
type Content struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`    // required
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"` // required; not updatable after creation
	CreatedAt   time.Time `json:"created_at"`
}
