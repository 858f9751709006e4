// Package service adapts the ingestion pipeline to the HTTP contract
package service

import (
	"context"

	perr "qayd/internal/platform/errors"
	"qayd/internal/services/api/ingest/domain"
	ingdom "qayd/internal/services/ingest/domain"
)

// Service defines the ingest service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the ingest service
type Svc struct {
	Runner ingdom.RunnerPort
}

// New constructs an ingest service over the runner port
func New(runner ingdom.RunnerPort) *Svc {
	if runner == nil {
		panic("ingest.Service requires a non nil RunnerPort")
	}
	return &Svc{Runner: runner}
}

// Submit registers a batch and returns its handle
func (s *Svc) Submit(ctx context.Context, in domain.SubmitInput) (domain.SubmitResponse, error) {
	id, err := s.Runner.Submit(ctx, in.Rows, in.Organization)
	if err != nil {
		return domain.SubmitResponse{}, err
	}
	return domain.SubmitResponse{BatchID: id, Status: string(ingdom.StatusPending)}, nil
}

// Progress returns the session snapshot
func (s *Svc) Progress(_ context.Context, batchID string) (domain.ProgressResponse, error) {
	p, ok := s.Runner.Progress(batchID)
	if !ok {
		return domain.ProgressResponse{}, perr.NotFoundf("no batch %s", batchID)
	}
	return domain.ProgressResponse{
		BatchID:    batchID,
		Status:     string(p.Status),
		Processed:  p.Processed,
		Valid:      p.Valid,
		Invalid:    p.Invalid,
		Duplicate:  p.Duplicate,
		Total:      p.Total,
		Error:      p.Err,
		StartedAt:  p.StartedAt,
		FinishedAt: p.FinishedAt,
	}, nil
}

// Errors returns the non-valid rows of a finished session
func (s *Svc) Errors(_ context.Context, batchID string) (domain.ErrorsResponse, error) {
	sum, ok := s.Runner.Result(batchID)
	if !ok {
		if _, live := s.Runner.Progress(batchID); live {
			return domain.ErrorsResponse{}, perr.Conflictf("batch %s still processing", batchID)
		}
		return domain.ErrorsResponse{}, perr.NotFoundf("no batch %s", batchID)
	}
	return domain.ErrorsResponse{
		BatchID:   batchID,
		Total:     sum.Total,
		Valid:     sum.Valid,
		Invalid:   sum.Invalid,
		Duplicate: sum.Duplicate,
		Rows:      domain.OutcomeRows(sum.Errors),
	}, nil
}
