package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/supplyline/supplyline/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

// warmupTimeout bounds a single warmup run.
const warmupTimeout = 2 * time.Minute

// ReportWarmer rebuilds every cached report.
type ReportWarmer interface {
	Warm(ctx context.Context) error
}

// ReportsWarmupJob pre-populates the report cache.
type ReportsWarmupJob struct {
	Reports ReportWarmer
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewReportsWarmupJob wires dependencies for the warmup handler.
func NewReportsWarmupJob(reports ReportWarmer, logger *slog.Logger, metrics *jobmetrics.Metrics) *ReportsWarmupJob {
	return &ReportsWarmupJob{Reports: reports, Logger: logger, Metrics: metrics}
}

// Handle processes TaskReportsWarmup tasks.
func (j *ReportsWarmupJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Reports == nil {
		return errors.New("reports warmup: handler not configured")
	}
	var payload ReportsWarmupPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	if payload.Reason == "" {
		payload.Reason = "scheduled"
	}

	tracker := metricsOrDefault(j.Metrics).Track(TaskReportsWarmup)
	defer func() { resultErr = tracker.End(resultErr) }()

	logger := jobLogger(j.Logger, TaskReportsWarmup).With(slog.String("reason", payload.Reason))
	start := time.Now()

	runCtx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()
	if err := j.Reports.Warm(runCtx); err != nil {
		logger.Error("reports warmup failed", slog.Any("error", err))
		return err
	}
	logger.Info("reports warmed", slog.Duration("duration", time.Since(start)))
	return nil
}

func metricsOrDefault(m *jobmetrics.Metrics) *jobmetrics.Metrics {
	if m != nil {
		return m
	}
	return defaultJobMetrics
}

func jobLogger(logger *slog.Logger, job string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("job", job))
}
