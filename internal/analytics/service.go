// Package analytics builds the inventory reports behind the dashboard and
// caches them in Redis until the next write.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/supplyline/supplyline/internal/masterdata/products"
	"github.com/supplyline/supplyline/internal/store"
)

// ProductSource lists the catalogue the reports read.
type ProductSource interface {
	List(ctx context.Context, limit int) ([]products.Product, error)
}

// RestockEstimator supplies monthly restock figures for the movement chart.
type RestockEstimator interface {
	Restock() int64
}

// Service coordinates report builds with the cache layer.
type Service struct {
	products ProductSource
	store    store.Store
	cache    *Cache
	restocks RestockEstimator
	logger   *slog.Logger
	group    singleflight.Group
}

// NewService wires the report sources. cache and restocks may be nil.
func NewService(source ProductSource, s store.Store, cache *Cache, restocks RestockEstimator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{products: source, store: s, cache: cache, restocks: restocks, logger: logger}
}

// reportBuildTimeout bounds a shared report build once it is detached from
// the request that started it.
const reportBuildTimeout = 30 * time.Second

// cached serves report name from the cache, building it at most once per key
// across concurrent callers.
func (s *Service) cached(ctx context.Context, name string, dest any, build func(context.Context) (any, error)) error {
	key, err := s.cache.BuildKey(ctx, name)
	lookup := true
	if err != nil {
		// Redis is unreachable: build without the cache.
		s.logger.Warn("report cache unavailable", slog.String("report", name), slog.Any("error", err))
		key = "uncached:" + name
		lookup = false
	}
	raw, err, _ := s.group.Do(key, func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reportBuildTimeout)
		defer cancel()
		if !lookup {
			return marshalBuild(buildCtx, build)
		}
		var value json.RawMessage
		if err := s.cache.FetchJSON(buildCtx, key, &value, build); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw.(json.RawMessage), dest)
}

func marshalBuild(ctx context.Context, build func(context.Context) (any, error)) (json.RawMessage, error) {
	value, err := build(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

// rebuild builds report name from the current data and overwrites the entry
// for the current cache version.
func (s *Service) rebuild(ctx context.Context, name string, build func(context.Context) (any, error)) error {
	key, err := s.cache.BuildKey(ctx, name)
	if err != nil {
		return err
	}
	raw, err := marshalBuild(ctx, build)
	if err != nil {
		return err
	}
	return s.cache.StoreJSON(ctx, key, raw)
}

func (s *Service) catalogue(ctx context.Context) ([]products.Product, error) {
	return s.products.List(ctx, 0)
}

// Optimize returns category stock levels and reorder recommendations.
func (s *Service) Optimize(ctx context.Context) (Optimization, error) {
	var out Optimization
	err := s.cached(ctx, "optimize", &out, s.buildOptimize)
	return out, err
}

func (s *Service) buildOptimize(ctx context.Context) (any, error) {
	items, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}
	return Optimization{ChartData: AggregateByCategory(items), ReorderRecommendations: Recommendations(items)}, nil
}

// CostSavings returns the estimated savings figure.
func (s *Service) CostSavings(ctx context.Context) (int64, error) {
	var out int64
	err := s.cached(ctx, "cost_savings", &out, s.buildCostSavings)
	return out, err
}

func (s *Service) buildCostSavings(ctx context.Context) (any, error) {
	items, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}
	return CostSavings(items), nil
}

// ForecastAccuracy returns the back-tested accuracy percentage.
func (s *Service) ForecastAccuracy(ctx context.Context) (float64, error) {
	var out float64
	err := s.cached(ctx, "forecast_accuracy", &out, s.buildForecastAccuracy)
	return out, err
}

func (s *Service) buildForecastAccuracy(ctx context.Context) (any, error) {
	items, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}
	return ForecastAccuracy(items), nil
}

// StockMovement returns the six month movement chart.
func (s *Service) StockMovement(ctx context.Context) ([]MonthMovement, error) {
	var out []MonthMovement
	err := s.cached(ctx, "stock_movement", &out, s.buildStockMovement)
	return out, err
}

func (s *Service) buildStockMovement(ctx context.Context) (any, error) {
	items, err := s.catalogue(ctx)
	if err != nil {
		return nil, err
	}
	var restock func() int64
	if s.restocks != nil {
		restock = s.restocks.Restock
	}
	return StockMovement(items, restock), nil
}

// Summary returns the supply-chain counters.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	err := s.cached(ctx, "summary", &out, s.buildSummary)
	return out, err
}

func (s *Service) buildSummary(ctx context.Context) (any, error) {
	return SummaryCounts(ctx, s.store)
}

// Warm rebuilds every report from the current data and replaces whatever the
// cache holds for the current version.
func (s *Service) Warm(ctx context.Context) error {
	reports := []struct {
		name  string
		build func(context.Context) (any, error)
	}{
		{"optimize", s.buildOptimize},
		{"cost_savings", s.buildCostSavings},
		{"forecast_accuracy", s.buildForecastAccuracy},
		{"stock_movement", s.buildStockMovement},
		{"summary", s.buildSummary},
	}
	for _, r := range reports {
		if err := s.rebuild(ctx, r.name, r.build); err != nil {
			return fmt.Errorf("warm %s: %w", r.name, err)
		}
	}
	return nil
}
