package insightshttp

import "github.com/go-chi/chi/v5"

// MountRoutes registers the forecast and insight endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	r.Post("/forecast", h.handleForecast)
	r.Get("/insights", h.handleInsights)
}
