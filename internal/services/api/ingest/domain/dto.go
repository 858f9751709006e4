// Package domain holds DTOs for ingest http and service contracts
package domain

import (
	"time"

	"qayd/internal/core/canon"
	ingdom "qayd/internal/services/ingest/domain"
)

// SubmitInput is the batch submission body. Rows are raw header-to-value
// maps exactly as parsed from the upload
type SubmitInput struct {
	Rows         []map[string]string `json:"rows" validate:"required,min=1"`
	Organization string              `json:"organization,omitempty" validate:"omitempty,max=200" example:"org-ngo-7"`
}

// SubmitResponse returns the session handle
type SubmitResponse struct {
	BatchID string `json:"batch_id" example:"6f1c7f3e-8f2a-4c3b-9b0e-2d7a1f5c9e44"`
	Status  string `json:"status" example:"pending"`
}

// ProgressResponse is a point-in-time session snapshot
type ProgressResponse struct {
	BatchID    string     `json:"batch_id"`
	Status     string     `json:"status" example:"processing"`
	Processed  int        `json:"processed" example:"120"`
	Valid      int        `json:"valid" example:"100"`
	Invalid    int        `json:"invalid" example:"15"`
	Duplicate  int        `json:"duplicate" example:"5"`
	Total      int        `json:"total" example:"300"`
	Error      string     `json:"error,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// RowErrorRow is one non-valid row from a finished session
type RowErrorRow struct {
	Index       int                `json:"index" example:"17"`
	Disposition string             `json:"disposition" example:"invalid"`
	Errors      []canon.FieldError `json:"errors,omitempty"`
	Message     string             `json:"message,omitempty"`
}

// ErrorsResponse lists the invalid and duplicate rows of a finished session
type ErrorsResponse struct {
	BatchID   string        `json:"batch_id"`
	Total     int           `json:"total" example:"300"`
	Valid     int           `json:"valid" example:"280"`
	Invalid   int           `json:"invalid" example:"15"`
	Duplicate int           `json:"duplicate" example:"5"`
	Rows      []RowErrorRow `json:"rows"`
}

// OutcomeRows converts pipeline outcomes to transport rows
func OutcomeRows(outs []ingdom.RowOutcome) []RowErrorRow {
	rows := make([]RowErrorRow, 0, len(outs))
	for _, o := range outs {
		rows = append(rows, RowErrorRow{
			Index:       o.Index,
			Disposition: string(o.Disposition),
			Errors:      o.Errors,
			Message:     o.Err,
		})
	}
	return rows
}
