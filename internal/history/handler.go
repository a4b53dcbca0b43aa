package history

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kpdinfo/kpdinfo/pkg/handlers"
	"github.com/kpdinfo/kpdinfo/pkg/middleware"
	"github.com/kpdinfo/kpdinfo/pkg/pagination"
	"github.com/kpdinfo/kpdinfo/pkg/routes"
)

// Handler provides HTTP endpoints for history operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pageCfg pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "history"),
		pagination: pageCfg,
	}
}

// Routes returns the route group definition for history endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/history",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// List returns a page of history entries, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		h.respondError(w, r, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single history entry by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, ErrNotFound)
		return
	}

	entry, err := h.sys.Find(r.Context(), id)
	if err != nil {
		h.respondError(w, r, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entry)
}

// Delete removes a history entry by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, ErrNotFound)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	kind := "INTERNAL_ERROR"
	if status == http.StatusNotFound {
		kind = "NOT_FOUND"
	}
	handlers.RespondError(w, h.logger, status, kind, err, middleware.RayFromContext(r.Context()))
}
