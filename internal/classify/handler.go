package classify

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kpdinfo/kpdinfo/pkg/handlers"
	"github.com/kpdinfo/kpdinfo/pkg/middleware"
	"github.com/kpdinfo/kpdinfo/pkg/routes"
)

// Handler provides the HTTP endpoint for classification requests.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// classifyRequest accepts the canonical input key and its short alias.
type classifyRequest struct {
	InputAsText *string `json:"input_as_text"`
	Q           *string `json:"q"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "classify"),
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classify",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Classify},
		},
	}
}

// Classify decodes the request body, runs the classification, and writes
// either the result or a stable error envelope.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	ray := middleware.RayFromContext(r.Context())

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, KindBadRequest, ErrInvalidBody, ray)
		return
	}

	var input string
	switch {
	case req.InputAsText != nil:
		input = *req.InputAsText
	case req.Q != nil:
		input = *req.Q
	}

	result, err := h.sys.Classify(r.Context(), input)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), Kind(err), err, ray)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
