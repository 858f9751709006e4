// Package domain defines core types and interfaces for record search
package domain

import (
	"qayd/internal/core/canon"
	recdom "qayd/internal/services/records/domain"
)

// Phase identifies one stage of the cascading search strategy, ordered
// cheapest/most-precise to most-expensive/most-permissive
type Phase uint8

// Cascade phases in execution order
const (
	PhasePrefix Phase = iota + 1
	PhaseTrigram
	PhaseFullText
	PhaseFuzzy
	PhaseDone
)

// String implements fmt.Stringer
func (p Phase) String() string {
	switch p {
	case PhasePrefix:
		return "prefix"
	case PhaseTrigram:
		return "trigram"
	case PhaseFullText:
		return "fulltext"
	case PhaseFuzzy:
		return "fuzzy"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Filters are the optional structured constraints ANDed onto every phase
type Filters struct {
	Status   canon.Status `json:"status,omitempty"`
	Gender   canon.Gender `json:"gender,omitempty"`
	AgeMin   *int         `json:"age_min,omitempty"`
	AgeMax   *int         `json:"age_max,omitempty"`
	Location string       `json:"location,omitempty"`
	DateFrom string       `json:"date_from,omitempty"` // canonical 2006-01-02, inclusive
	DateTo   string       `json:"date_to,omitempty"`   // canonical 2006-01-02, inclusive
}

// Query is one search request
type Query struct {
	Text    string  `json:"query"`
	Filters Filters `json:"filters"`
	Limit   int     `json:"limit,omitempty"` // hard-capped in service
}

// Result is a record plus its rank and the cascade phase that produced it.
// A result set never contains the same record twice; when two phases find
// the same record the earliest phase wins the rank position
type Result struct {
	Record recdom.Record `json:"record"`
	Rank   float64       `json:"rank"`
	Phase  Phase         `json:"-"`

	// MatchPhase is the wire form of Phase
	MatchPhase string `json:"match_phase"`
}
