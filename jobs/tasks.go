package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportsWarmup rebuilds the cached dashboard reports.
	TaskReportsWarmup = "reports:warmup"
	// TaskProductsBackfillHistory generates sales history for products without one.
	TaskProductsBackfillHistory = "products:backfill-history"
)

// ReportsWarmupPayload describes why a warmup was requested.
type ReportsWarmupPayload struct {
	Reason string `json:"reason"`
}

// NewReportsWarmupTask constructs a warmup task.
func NewReportsWarmupTask(reason string) (*asynq.Task, error) {
	data, err := json.Marshal(ReportsWarmupPayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportsWarmup, data), nil
}

// NewBackfillHistoryTask constructs a history backfill task.
func NewBackfillHistoryTask() *asynq.Task {
	return asynq.NewTask(TaskProductsBackfillHistory, nil)
}
