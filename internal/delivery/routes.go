package delivery

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/shared"
)

// Handler serves /deliveries.
type Handler = shared.ResourceHandler[Delivery, CreateInput, UpdateInput]

// NewHandler exposes the delivery service over the generic CRUD routes.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return shared.NewResourceHandler[Delivery, CreateInput, UpdateInput](logger, "deliveries", service)
}

// LastMileHandler serves GET /last-mile-deliveries.
type LastMileHandler struct {
	logger  *slog.Logger
	service *Service
}

// NewLastMileHandler builds the tracking handler.
func NewLastMileHandler(logger *slog.Logger, service *Service) *LastMileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LastMileHandler{logger: logger, service: service}
}

// MountRoutes registers the tracking endpoint on r.
func (h *LastMileHandler) MountRoutes(r chi.Router) {
	r.Get("/last-mile-deliveries", h.list)
}

func (h *LastMileHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, err := httpx.QueryLimit(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	out, err := h.service.LastMile(r.Context(), limit)
	if err != nil {
		h.logger.Error("last-mile deliveries failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}
