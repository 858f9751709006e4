// Package http provides http transport for batch ingestion
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"qayd/internal/modkit/httpkit"
	"qayd/internal/services/api/ingest/domain"
	svc "qayd/internal/services/api/ingest/service"
)

// Register mounts ingest endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)
	httpkit.Get(r, "/{id}", h.progress)
	httpkit.Get(r, "/{id}/errors", h.errors)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /ingest Ingest ingestSubmit
// @Summary Submit a batch of raw rows for ingestion
// @Description Rows are processed asynchronously in input order; poll the returned batch id for progress
// @Tags Ingest
// @Accept json
// @Produce json
// @Param payload body domain.SubmitInput true "Batch"
// @Success 200 {object} domain.SubmitResponse "ok"
// @Router /ingest [post]
func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	// provenance defaults to the authenticated org when the body omits it
	if in.Organization == "" {
		if org, err := httpkit.User(r); err == nil {
			in.Organization = org
		}
	}
	return h.svc.Submit(r.Context(), in)
}

// swagger:route GET /ingest/{id} Ingest ingestProgress
// @Summary Progress snapshot for a batch
// @Tags Ingest
// @Produce json
// @Param id path string true "Batch id"
// @Success 200 {object} domain.ProgressResponse "ok"
// @Router /ingest/{id} [get]
func (h *handlers) progress(r *stdhttp.Request) (any, error) {
	return h.svc.Progress(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route GET /ingest/{id}/errors Ingest ingestErrors
// @Summary Invalid and duplicate rows of a finished batch
// @Tags Ingest
// @Produce json
// @Param id path string true "Batch id"
// @Success 200 {object} domain.ErrorsResponse "ok"
// @Router /ingest/{id}/errors [get]
func (h *handlers) errors(r *stdhttp.Request) (any, error) {
	return h.svc.Errors(r.Context(), chi.URLParam(r, "id"))
}
