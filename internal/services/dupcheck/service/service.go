// Package service implements duplicate classification over the search cascade
package service

import (
	"context"
	"strings"

	"qayd/internal/core/similarity"
	perr "qayd/internal/platform/errors"
	"qayd/internal/services/dupcheck/domain"
	recdom "qayd/internal/services/records/domain"
	searchdom "qayd/internal/services/search/domain"
)

// Service implements domain.CheckerPort on top of the search orchestrator
type Service struct {
	Search    searchdom.SearcherPort
	Sim       *similarity.Engine
	Threshold float64

	// MaxCandidates bounds the cascade result set scanned for near-matches
	MaxCandidates int
}

// New constructs a checker with the default similarity threshold
func New(search searchdom.SearcherPort) *Service {
	if search == nil {
		panic("dupcheck.Service requires a non nil SearcherPort")
	}
	return &Service{
		Search:        search,
		Sim:           similarity.New(),
		Threshold:     similarity.DefaultThreshold,
		MaxCandidates: 50,
	}
}

// Check implements domain.CheckerPort
// Exact matches short-circuit: when the normalized name already exists the
// near-match scan is skipped entirely, so Exact and Similar never overlap
func (s *Service) Check(ctx context.Context, fullName string) (domain.Verdict, error) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return domain.Verdict{}, perr.InvalidArgf("full name is required")
	}

	exact, err := s.Search.ExactMatches(ctx, name)
	if err != nil {
		return domain.Verdict{}, err
	}
	if len(exact) > 0 {
		return domain.Verdict{Exact: resultRecords(exact)}, nil
	}

	res, err := s.Search.Search(ctx, searchdom.Query{Text: name, Limit: s.MaxCandidates})
	if err != nil {
		return domain.Verdict{}, err
	}
	var similar []recdom.Record
	for _, r := range res {
		if s.Sim.Similar(name, r.Record.FullName, s.Threshold) {
			similar = append(similar, r.Record)
		}
	}
	return domain.Verdict{Similar: similar}, nil
}

func resultRecords(rs []searchdom.Result) []recdom.Record {
	out := make([]recdom.Record, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Record)
	}
	return out
}
