// Package domain holds batch ingestion types and ports
package domain

import (
	"context"
	"time"

	"qayd/internal/core/canon"
)

// BatchStatus is the lifecycle of one ingestion session
type BatchStatus string

const (
	StatusPending    BatchStatus = "pending"
	StatusProcessing BatchStatus = "processing"
	StatusCompleted  BatchStatus = "completed"
	StatusFailed     BatchStatus = "failed"
)

// Disposition classifies what happened to a single row
type Disposition string

const (
	DispositionValid     Disposition = "valid"
	DispositionInvalid   Disposition = "invalid"
	DispositionDuplicate Disposition = "duplicate"
)

// RowOutcome is the immutable per-row result. Once the disposition is set
// it never changes, regardless of later rows
type RowOutcome struct {
	Index       int                `json:"index"`
	Record      canon.Record       `json:"record,omitempty"`
	Errors      []canon.FieldError `json:"errors,omitempty"`
	Disposition Disposition        `json:"disposition"`

	// Err carries a storage-level failure for a row that validated but
	// could not be inserted
	Err string `json:"error,omitempty"`
}

// Progress is a consistent point-in-time snapshot of a running session
type Progress struct {
	Status    BatchStatus `json:"status"`
	Processed int         `json:"processed"`
	Valid     int         `json:"valid"`
	Invalid   int         `json:"invalid"`
	Duplicate int         `json:"duplicate"`
	Total     int         `json:"total"`
	Err       string      `json:"error,omitempty"`

	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Summary is the terminal report of a finished session
type Summary struct {
	Total     int          `json:"total"`
	Valid     int          `json:"valid"`
	Invalid   int          `json:"invalid"`
	Duplicate int          `json:"duplicate"`
	Errors    []RowOutcome `json:"errors,omitempty"`
}

// RunnerPort runs ingestion batches and exposes their progress.
// Submit returns as soon as the session is registered; the batch body
// runs asynchronously
type RunnerPort interface {
	Submit(ctx context.Context, rows []map[string]string, org string) (string, error)
	Progress(id string) (Progress, bool)
	Result(id string) (Summary, bool)
}
