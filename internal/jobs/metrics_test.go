package jobmetrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

// sample returns the summed counter value of the named family.
func sample(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestTrackerRecordsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	if err := m.Track("reports:warmup").End(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boom := errors.New("boom")
	if err := m.Track("reports:warmup").End(boom); !errors.Is(err, boom) {
		t.Fatalf("expected error passthrough, got %v", err)
	}

	if got := sample(t, reg, "supplyline_jobs_total"); got != 2 {
		t.Fatalf("runs = %v", got)
	}
	if got := sample(t, reg, "supplyline_jobs_failures_total"); got != 1 {
		t.Fatalf("failures = %v", got)
	}

	m.AddBackfilled(3)
	m.AddBackfilled(0)
	if got := sample(t, reg, "supplyline_products_history_backfilled_total"); got != 3 {
		t.Fatalf("backfilled = %v", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	if err := m.Track("x").End(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.AddBackfilled(2)
}
