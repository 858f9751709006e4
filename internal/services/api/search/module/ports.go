package module

import (
	"context"

	"qayd/internal/services/api/search/domain"
	ssvc "qayd/internal/services/api/search/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptSearchPort struct{ svc ssvc.Service }

// Search runs the cascading fuzzy search
func (a adaptSearchPort) Search(ctx context.Context, in domain.SearchInput) (domain.SearchResponse, error) {
	return a.svc.Search(ctx, in)
}
