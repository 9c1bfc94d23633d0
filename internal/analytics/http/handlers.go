package analytichttp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/supplyline/supplyline/internal/analytics"
	"github.com/supplyline/supplyline/internal/platform/httpx"
)

// ReportService defines the report contract used by the handler.
type ReportService interface {
	Optimize(ctx context.Context) (analytics.Optimization, error)
	CostSavings(ctx context.Context) (int64, error)
	ForecastAccuracy(ctx context.Context) (float64, error)
	StockMovement(ctx context.Context) ([]analytics.MonthMovement, error)
	Summary(ctx context.Context) (analytics.Summary, error)
}

// Handler serves the dashboard report endpoints.
type Handler struct {
	logger  *slog.Logger
	service ReportService
}

// NewHandler constructs the report HTTP handler.
func NewHandler(logger *slog.Logger, service ReportService) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Optimize(r.Context())
	h.respond(w, "optimize", out, err)
}

func (h *Handler) handleCostSavings(w http.ResponseWriter, r *http.Request) {
	savings, err := h.service.CostSavings(r.Context())
	h.respond(w, "cost savings", map[string]int64{"savings": savings}, err)
}

func (h *Handler) handleForecastAccuracy(w http.ResponseWriter, r *http.Request) {
	accuracy, err := h.service.ForecastAccuracy(r.Context())
	h.respond(w, "forecast accuracy", map[string]float64{"accuracy": accuracy}, err)
}

func (h *Handler) handleStockMovement(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.StockMovement(r.Context())
	h.respond(w, "stock movement", out, err)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Summary(r.Context())
	h.respond(w, "supply chain summary", out, err)
}

func (h *Handler) respond(w http.ResponseWriter, report string, payload any, err error) {
	if err != nil {
		h.logger.Error("report failed", slog.String("report", report), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, payload)
}
