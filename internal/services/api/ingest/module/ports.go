package module

import (
	"context"

	"qayd/internal/services/api/ingest/domain"
	isvc "qayd/internal/services/api/ingest/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptRunnerPort struct{ svc isvc.Service }

// Submit registers a batch and returns its handle
func (a adaptRunnerPort) Submit(ctx context.Context, in domain.SubmitInput) (domain.SubmitResponse, error) {
	return a.svc.Submit(ctx, in)
}

// Progress returns the session snapshot
func (a adaptRunnerPort) Progress(ctx context.Context, id string) (domain.ProgressResponse, error) {
	return a.svc.Progress(ctx, id)
}

// Errors returns the non-valid rows of a finished session
func (a adaptRunnerPort) Errors(ctx context.Context, id string) (domain.ErrorsResponse, error) {
	return a.svc.Errors(ctx, id)
}
