// Package http provides http transport for duplicate checks
package http

import (
	stdhttp "net/http"

	"qayd/internal/modkit/httpkit"
	"qayd/internal/services/api/dupcheck/domain"
	svc "qayd/internal/services/api/dupcheck/service"
)

// Register mounts dupcheck endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /duplicates/check Duplicates duplicatesCheck
// @Summary Classify a name against stored records
// @Description Exact matches on normalized identity win; otherwise near-matches above the similarity threshold are listed
// @Tags Duplicates
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Candidate"
// @Success 200 {object} domain.CheckResponse "ok"
// @Router /duplicates/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in)
}
