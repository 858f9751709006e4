// Package service adapts the duplicate checker to the HTTP contract
package service

import (
	"context"

	"qayd/internal/services/api/dupcheck/domain"
	dupdom "qayd/internal/services/dupcheck/domain"
	recdom "qayd/internal/services/records/domain"
)

// Service defines the dupcheck service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dupcheck service
type Svc struct {
	Checker dupdom.CheckerPort
}

// New constructs a dupcheck service over the checker port
func New(checker dupdom.CheckerPort) *Svc {
	if checker == nil {
		panic("dupcheck.Service requires a non nil CheckerPort")
	}
	return &Svc{Checker: checker}
}

// Check classifies a candidate name against the stored corpus
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResponse, error) {
	v, err := s.Checker.Check(ctx, in.FullName)
	if err != nil {
		return domain.CheckResponse{}, err
	}
	return domain.CheckResponse{
		IsDuplicate: v.IsDuplicate(),
		Exact:       toRows(v.Exact),
		Similar:     toRows(v.Similar),
	}, nil
}

func toRows(recs []recdom.Record) []domain.MatchRow {
	out := make([]domain.MatchRow, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.MatchRow{
			ID:               r.ID,
			FullName:         r.FullName,
			DetentionDate:    r.DetentionDate,
			LastSeenLocation: r.LastSeenLocation,
			Status:           string(r.Status),
		})
	}
	return out
}
