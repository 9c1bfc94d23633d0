package insightshttp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/insights"
	"github.com/supplyline/supplyline/internal/platform/httpx"
)

// Service exposes the business logic required by the handler.
type Service interface {
	Forecast(ctx context.Context, req insights.ForecastRequest) ([]forecast.ChartPoint, error)
	Insights(ctx context.Context) ([]insights.Insight, error)
}

// Handler serves forecast and insight requests.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// NewHandler builds an insights handler.
func NewHandler(logger *slog.Logger, service Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	var req insights.ForecastRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	points, err := h.service.Forecast(r.Context(), req)
	if err != nil {
		h.fail(w, "forecast", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"chart_data": points})
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Insights(r.Context())
	if err != nil {
		h.fail(w, "insights", err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if httpx.StatusFor(err) >= http.StatusInternalServerError {
		h.logger.Error(op+" failed", slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
