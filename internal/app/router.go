package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/supplyline/supplyline/internal/analytics"
	analytichttp "github.com/supplyline/supplyline/internal/analytics/http"
	"github.com/supplyline/supplyline/internal/delivery"
	insightshttp "github.com/supplyline/supplyline/internal/insights/http"
	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/masterdata/products"
	"github.com/supplyline/supplyline/internal/masterdata/suppliers"
	"github.com/supplyline/supplyline/internal/masterdata/warehouses"
	"github.com/supplyline/supplyline/internal/observability"
	"github.com/supplyline/supplyline/internal/procurement"
	"github.com/supplyline/supplyline/internal/sales"
	"github.com/supplyline/supplyline/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger   *slog.Logger
	Config   *Config
	Services *Services
	// ImportListener hears about bulk imports; nil when jobs are disabled.
	ImportListener products.ImportListener
	JobHandler     *jobs.Handler
	Metrics        *observability.Metrics
}

// NewRouter constructs the chi.Router with the API defaults.
func NewRouter(params RouterParams) http.Handler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}
	svc := params.Services
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}
	r.Use(chimw.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	productHandler := products.NewHandler(logger, svc.Products, params.ImportListener)

	// Writes invalidate the report cache.
	r.Group(func(r chi.Router) {
		r.Use(analytics.InvalidateOnWrite(svc.Cache, logger))
		r.Route("/products", productHandler.MountRoutes)
		productHandler.MountImport(r)
		r.Route("/suppliers", suppliers.NewHandler(logger, svc.Suppliers).MountRoutes)
		r.Route("/warehouses", warehouses.NewHandler(logger, svc.Warehouses).MountRoutes)
		r.Route("/stock-transfers", inventory.NewTransferHandler(logger, svc.Transfers).MountRoutes)
		r.Route("/purchase-orders", procurement.NewOrderHandler(logger, svc.PurchaseOrders).MountRoutes)
		r.Route("/shipments", procurement.NewShipmentHandler(logger, svc.Shipments).MountRoutes)
		r.Route("/orders", sales.NewHandler(logger, svc.Orders).MountRoutes)
		r.Route("/deliveries", delivery.NewHandler(logger, svc.Deliveries).MountRoutes)
		insightshttp.NewHandler(logger, svc.Insights).MountRoutes(r)
	})

	analytichttp.NewHandler(logger, svc.Reports).MountRoutes(r)
	delivery.NewLastMileHandler(logger, svc.Deliveries).MountRoutes(r)

	jobHandler := params.JobHandler
	if jobHandler == nil {
		jobHandler = jobs.NewHandler(nil, logger)
	}
	r.Route("/jobs", jobHandler.MountRoutes)
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}
	return r
}
