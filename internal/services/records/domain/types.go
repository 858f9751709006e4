// Package domain defines core types and interfaces for detainee records
package domain

import (
	"time"

	"qayd/internal/core/canon"
)

// Record is a persisted detainee entry: the canonical field shape plus
// identity, provenance and audit data
type Record struct {
	ID string `json:"id"` // uuid

	canon.Record

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// History is the ordered list of prior-value snapshots, oldest first
	History []Revision `json:"history,omitempty"`
}

// Revision is one prior-value snapshot taken before a field was changed
type Revision struct {
	Field    string    `json:"field"`
	OldValue string    `json:"old_value"`
	Reason   string    `json:"reason"`
	At       time.Time `json:"at"`
}
