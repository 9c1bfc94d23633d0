// Package insights turns product sales history into demand forecasts and
// per-product trend insights.
package insights

import (
	"context"
	"errors"
	"fmt"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/masterdata/products"
	"github.com/supplyline/supplyline/internal/platform/httpx"
)

const (
	// DefaultPeriods is the forecast horizon when a request names none.
	DefaultPeriods = 12
	// MaxInsights caps the products examined by Insights.
	MaxInsights = 3
)

const seasonalityUnknown = "N/A"

// Catalog is the product access the service needs.
type Catalog interface {
	Get(ctx context.Context, id string) (products.Product, error)
	ListWithHistory(ctx context.Context, limit int) ([]products.Product, error)
	EnsureHistory(ctx context.Context, p products.Product) (products.Product, error)
}

// ConfidenceSource supplies insight confidence figures.
type ConfidenceSource interface {
	Confidence() int
}

// Insight summarises one product's demand outlook.
type Insight struct {
	Product        string          `json:"product"`
	CurrentDemand  forecast.Demand `json:"currentDemand"`
	PredictedTrend forecast.Trend  `json:"predictedTrend"`
	Seasonality    string          `json:"seasonality"`
	Recommendation string          `json:"recommendation"`
	Confidence     *int            `json:"confidence,omitempty"`
}

// ForecastRequest is the POST /forecast payload.
type ForecastRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Periods   *int   `json:"periods" validate:"omitnil,min=0,max=120"`
}

// Service answers forecast and insight queries.
type Service struct {
	catalog    Catalog
	confidence ConfidenceSource
}

// NewService wires the catalogue. confidence may be nil.
func NewService(catalog Catalog, confidence ConfidenceSource) *Service {
	return &Service{catalog: catalog, confidence: confidence}
}

// Forecast projects a product's sales. Products without history get one
// generated first when the catalogue can; too short a history is a bad request.
func (s *Service) Forecast(ctx context.Context, req ForecastRequest) ([]forecast.ChartPoint, error) {
	if err := httpx.Validate(req); err != nil {
		return nil, err
	}
	periods := DefaultPeriods
	if req.Periods != nil {
		periods = *req.Periods
	}
	p, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	p, err = s.catalog.EnsureHistory(ctx, p)
	if err != nil {
		return nil, err
	}
	points, err := forecast.Forecast(p.SalesHistory, periods)
	if errors.Is(err, forecast.ErrInsufficientData) {
		return nil, fmt.Errorf("%w: not enough sales history to forecast: %w", httpx.ErrBadRequest, err)
	}
	return points, err
}

// Insights reports on up to MaxInsights products with history. Products with
// a single period are skipped.
func (s *Service) Insights(ctx context.Context) ([]Insight, error) {
	items, err := s.catalog.ListWithHistory(ctx, MaxInsights)
	if err != nil {
		return nil, err
	}
	out := make([]Insight, 0, len(items))
	for _, p := range items {
		line, err := forecast.FitLinearTrend(forecast.Values(p.SalesHistory))
		if errors.Is(err, forecast.ErrInsufficientData) {
			continue
		}
		if err != nil {
			return nil, err
		}
		trend := forecast.ClassifyTrend(line.Slope)
		insight := Insight{
			Product:        p.Name,
			CurrentDemand:  forecast.ClassifyDemand(p.SalesHistory),
			PredictedTrend: trend,
			Seasonality:    seasonalityUnknown,
			Recommendation: forecast.Recommend(trend),
		}
		if s.confidence != nil {
			c := s.confidence.Confidence()
			insight.Confidence = &c
		}
		out = append(out, insight)
	}
	return out, nil
}
