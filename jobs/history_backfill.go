package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/supplyline/supplyline/internal/jobs"
)

// HistoryBackfiller fills in missing product sales history.
type HistoryBackfiller interface {
	BackfillHistory(ctx context.Context) (int, error)
}

// CacheBumper invalidates the cached reports.
type CacheBumper interface {
	Bump(ctx context.Context) error
}

// HistoryBackfillJob gives every product without sales history a generated one.
type HistoryBackfillJob struct {
	Products HistoryBackfiller
	Reports  CacheBumper
	Logger   *slog.Logger
	Metrics  *jobmetrics.Metrics
}

// NewHistoryBackfillJob wires dependencies for the backfill handler. reports
// may be nil when the report cache is disabled.
func NewHistoryBackfillJob(products HistoryBackfiller, reports CacheBumper, logger *slog.Logger, metrics *jobmetrics.Metrics) *HistoryBackfillJob {
	return &HistoryBackfillJob{Products: products, Reports: reports, Logger: logger, Metrics: metrics}
}

// Handle processes TaskProductsBackfillHistory tasks.
func (j *HistoryBackfillJob) Handle(ctx context.Context, _ *asynq.Task) (resultErr error) {
	if j == nil || j.Products == nil {
		return errors.New("history backfill: handler not configured")
	}
	metrics := metricsOrDefault(j.Metrics)
	tracker := metrics.Track(TaskProductsBackfillHistory)
	defer func() { resultErr = tracker.End(resultErr) }()

	logger := jobLogger(j.Logger, TaskProductsBackfillHistory)
	filled, err := j.Products.BackfillHistory(ctx)
	metrics.AddBackfilled(filled)
	if filled > 0 && j.Reports != nil {
		if bumpErr := j.Reports.Bump(ctx); bumpErr != nil {
			logger.Error("report cache bump failed", slog.Any("error", bumpErr))
			if err == nil {
				err = bumpErr
			}
		}
	}
	if err != nil {
		logger.Error("history backfill failed", slog.Int("filled", filled), slog.Any("error", err))
		return err
	}
	logger.Info("history backfill complete", slog.Int("filled", filled))
	return nil
}
