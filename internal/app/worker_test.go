package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/supplyline/internal/analytics"
	jobmetrics "github.com/supplyline/supplyline/internal/jobs"
	"github.com/supplyline/supplyline/internal/sampledata"
	"github.com/supplyline/supplyline/internal/store/memstore"
	"github.com/supplyline/supplyline/jobs"
)

func TestHistoryBackfillRefreshesServedReports(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	db := memstore.New()
	ctx := context.Background()

	api := NewServices(Deps{Store: db, Redis: client, CacheTTL: time.Hour})
	worker := NewServices(Deps{Store: db, Redis: client, CacheTTL: time.Hour, Generator: sampledata.New(7)})

	_, err := Seed(ctx, api, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	before, err := api.Reports.ForecastAccuracy(ctx)
	require.NoError(t, err)
	assert.Zero(t, before)

	job := jobs.NewHistoryBackfillJob(worker.Products, worker.Cache, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))
	require.NoError(t, job.Handle(ctx, jobs.NewBackfillHistoryTask()))

	items, err := api.Products.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, p := range items {
		require.Len(t, p.SalesHistory, sampledata.HistoryLength)
	}
	after, err := api.Reports.ForecastAccuracy(ctx)
	require.NoError(t, err)
	assert.Equal(t, analytics.ForecastAccuracy(items), after)
	assert.NotZero(t, after)

	// a second run has nothing to fill and keeps the cache
	version, err := api.Cache.Version(ctx)
	require.NoError(t, err)
	require.NoError(t, job.Handle(ctx, jobs.NewBackfillHistoryTask()))
	unchanged, err := api.Cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, unchanged)
}
