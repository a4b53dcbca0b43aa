package examples

import (
	"log/slog"
	"net/http"

	"github.com/kpdinfo/kpdinfo/pkg/handlers"
	"github.com/kpdinfo/kpdinfo/pkg/routes"
)

// Handler serves the static example set.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler with the given logger.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "examples"),
	}
}

// Routes returns the route group definition for the examples endpoint.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/examples",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
		},
	}
}

// List returns all canned examples.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, All())
}
