// Package http provides http transport for search
package http

import (
	stdhttp "net/http"

	"qayd/internal/modkit/httpkit"
	"qayd/internal/services/api/search/domain"
	svc "qayd/internal/services/api/search/service"
)

// Register mounts search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SearchInput](r, "/", h.search)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /search Search search
// @Summary Fuzzy search over detainee records
// @Description Cascades prefix, trigram, full-text and fuzzy phases, stopping at the first that matches
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.SearchResponse "ok"
// @Router /search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}
