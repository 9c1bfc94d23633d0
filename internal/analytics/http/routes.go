package analytichttp

import "github.com/go-chi/chi/v5"

// MountRoutes registers the report endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Get("/optimize", h.handleOptimize)
	r.Get("/cost-savings", h.handleCostSavings)
	r.Get("/forecast-accuracy", h.handleForecastAccuracy)
	r.Get("/stock-movement", h.handleStockMovement)
	r.Get("/supply-chain-summary", h.handleSummary)
}
