package app

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/supplyline/supplyline/internal/analytics"
	"github.com/supplyline/supplyline/internal/delivery"
	"github.com/supplyline/supplyline/internal/insights"
	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/masterdata/products"
	"github.com/supplyline/supplyline/internal/masterdata/suppliers"
	"github.com/supplyline/supplyline/internal/masterdata/warehouses"
	"github.com/supplyline/supplyline/internal/procurement"
	"github.com/supplyline/supplyline/internal/sales"
	"github.com/supplyline/supplyline/internal/sampledata"
	"github.com/supplyline/supplyline/internal/store"
)

// Deps are the external resources the services are built on.
type Deps struct {
	Store store.Store
	// Redis backs the report cache; nil disables caching.
	Redis    *redis.Client
	CacheTTL time.Duration
	// Generator supplies synthetic figures; nil disables them.
	Generator *sampledata.Generator
	Logger    *slog.Logger
}

// Services bundles the domain services shared by the server and the worker.
type Services struct {
	Products       *products.Service
	Suppliers      *suppliers.Service
	Warehouses     *warehouses.Service
	Transfers      *inventory.TransferService
	PurchaseOrders *procurement.OrderService
	Shipments      *procurement.ShipmentService
	Orders         *sales.Service
	Deliveries     *delivery.Service
	Reports        *analytics.Service
	Insights       *insights.Service
	Cache          *analytics.Cache
}

// NewServices wires every domain service onto the store.
func NewServices(d Deps) *Services {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	// Interfaces stay nil unless a generator exists.
	var (
		history    products.HistorySource
		tracker    delivery.Tracker
		confidence insights.ConfidenceSource
		restocks   analytics.RestockEstimator
	)
	if d.Generator != nil {
		history, tracker, confidence, restocks = d.Generator, d.Generator, d.Generator, d.Generator
	}

	var cache *analytics.Cache
	if d.Redis != nil {
		cache = analytics.NewCache(d.Redis, d.CacheTTL)
	}

	productService := products.NewService(d.Store, history, logger)
	return &Services{
		Products:       productService,
		Suppliers:      suppliers.NewService(d.Store),
		Warehouses:     warehouses.NewService(d.Store),
		Transfers:      inventory.NewTransferService(d.Store),
		PurchaseOrders: procurement.NewOrderService(d.Store),
		Shipments:      procurement.NewShipmentService(d.Store),
		Orders:         sales.NewService(d.Store),
		Deliveries:     delivery.NewService(d.Store, tracker),
		Reports:        analytics.NewService(productService, d.Store, cache, restocks, logger),
		Insights:       insights.NewService(productService, confidence),
		Cache:          cache,
	}
}

// NewGenerator returns the sample data generator when cfg enables it.
func NewGenerator(cfg *Config) *sampledata.Generator {
	if !cfg.SampleDataEnabled() {
		return nil
	}
	return sampledata.New(cfg.SampleSeed)
}
