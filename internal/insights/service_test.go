package insights

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/masterdata/products"
	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store"
)

type stubCatalog struct {
	items     map[string]products.Product
	order     []string
	generated []forecast.Point
	ensured   int
}

func newCatalog(items ...products.Product) *stubCatalog {
	c := &stubCatalog{items: map[string]products.Product{}}
	for _, p := range items {
		c.items[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *stubCatalog) Get(_ context.Context, id string) (products.Product, error) {
	p, ok := c.items[id]
	if !ok {
		return products.Product{}, fmt.Errorf("products: get %s: %w", id, store.ErrNotFound)
	}
	return p, nil
}

func (c *stubCatalog) ListWithHistory(_ context.Context, limit int) ([]products.Product, error) {
	var out []products.Product
	for _, id := range c.order {
		if p := c.items[id]; len(p.SalesHistory) > 0 {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (c *stubCatalog) EnsureHistory(_ context.Context, p products.Product) (products.Product, error) {
	if len(p.SalesHistory) == 0 && c.generated != nil {
		c.ensured++
		p.SalesHistory = c.generated
		c.items[p.ID] = p
	}
	return p, nil
}

type fixedConfidence int

func (f fixedConfidence) Confidence() int { return int(f) }

func series(values ...int64) []forecast.Point {
	out := make([]forecast.Point, len(values))
	for i, v := range values {
		out[i] = forecast.Point{Period: fmt.Sprintf("Month %d", i+1), Sales: v}
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestForecastDefaultsToTwelvePeriods(t *testing.T) {
	catalog := newCatalog(products.Product{ID: "p1", Name: "Hammer", SalesHistory: series(50, 60, 70, 80, 90, 100)})
	svc := NewService(catalog, nil)

	points, err := svc.Forecast(context.Background(), ForecastRequest{ProductID: "p1"})
	require.NoError(t, err)
	require.Len(t, points, 18)
	assert.Nil(t, points[0].Predicted)
	assert.Equal(t, "Month 7", points[6].Period)
	assert.InDelta(t, 110, *points[6].Predicted, 1e-9)
	assert.Equal(t, "Month 18", points[17].Period)

	points, err = svc.Forecast(context.Background(), ForecastRequest{ProductID: "p1", Periods: intPtr(0)})
	require.NoError(t, err)
	assert.Len(t, points, 6)
}

func TestForecastGeneratesMissingHistory(t *testing.T) {
	catalog := newCatalog(products.Product{ID: "p1", Name: "Hammer"})
	catalog.generated = series(10, 10, 10)
	svc := NewService(catalog, nil)

	points, err := svc.Forecast(context.Background(), ForecastRequest{ProductID: "p1", Periods: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.InDelta(t, 10, *points[4].Predicted, 1e-9)
	assert.Equal(t, 1, catalog.ensured)
}

func TestForecastErrors(t *testing.T) {
	catalog := newCatalog(
		products.Product{ID: "bare", Name: "Bare"},
		products.Product{ID: "short", Name: "Short", SalesHistory: series(10)},
	)
	svc := NewService(catalog, nil)
	ctx := context.Background()

	_, err := svc.Forecast(ctx, ForecastRequest{ProductID: "bare"})
	require.ErrorIs(t, err, forecast.ErrInsufficientData)
	require.ErrorIs(t, err, httpx.ErrBadRequest)

	_, err = svc.Forecast(ctx, ForecastRequest{ProductID: "short"})
	require.ErrorIs(t, err, httpx.ErrBadRequest)

	_, err = svc.Forecast(ctx, ForecastRequest{ProductID: "missing"})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Forecast(ctx, ForecastRequest{})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.Forecast(ctx, ForecastRequest{ProductID: "short", Periods: intPtr(-1)})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestInsights(t *testing.T) {
	catalog := newCatalog(
		products.Product{ID: "a", Name: "Rising", SalesHistory: series(50, 60, 70, 80, 90, 100)},
		products.Product{ID: "b", Name: "Single", SalesHistory: series(40)},
		products.Product{ID: "c", Name: "Falling", SalesHistory: series(100, 80, 60, 40)},
		products.Product{ID: "d", Name: "Flat", SalesHistory: series(20, 20)},
	)

	got, err := NewService(catalog, fixedConfidence(91)).Insights(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rising", got[0].Product)
	assert.Equal(t, forecast.TrendIncreasing, got[0].PredictedTrend)
	assert.Equal(t, forecast.DemandHigh, got[0].CurrentDemand)
	assert.Equal(t, "N/A", got[0].Seasonality)
	require.NotNil(t, got[0].Confidence)
	assert.Equal(t, 91, *got[0].Confidence)
	assert.Equal(t, "Falling", got[1].Product)
	assert.Equal(t, forecast.TrendDecreasing, got[1].PredictedTrend)

	got, err = NewService(catalog, nil).Insights(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got[0].Confidence)
}
