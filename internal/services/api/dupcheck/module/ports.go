package module

import (
	"context"

	"qayd/internal/services/api/dupcheck/domain"
	dsvc "qayd/internal/services/api/dupcheck/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCheckerPort struct{ svc dsvc.Service }

// Check classifies a candidate name against the stored corpus
func (a adaptCheckerPort) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResponse, error) {
	return a.svc.Check(ctx, in)
}
