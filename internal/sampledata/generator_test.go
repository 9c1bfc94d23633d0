package sampledata

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesHistoryShape(t *testing.T) {
	g := New(42)
	h := g.SalesHistory()
	require.Len(t, h, HistoryLength)
	for i, p := range h {
		assert.Equal(t, fmt.Sprintf("Month %d", i+1), p.Period)
		assert.GreaterOrEqual(t, p.Sales, int64(50))
		assert.Less(t, p.Sales, int64(200))
	}
}

func TestSeededGeneratorsAgree(t *testing.T) {
	a, b := New(7), New(7)
	assert.Equal(t, a.SalesHistory(), b.SalesHistory())
	assert.Equal(t, a.Confidence(), b.Confidence())
}

func TestRanges(t *testing.T) {
	g := New(1)
	for i := 0; i < 500; i++ {
		c := g.Confidence()
		if c < 85 || c > 97 {
			t.Fatalf("confidence out of range: %d", c)
		}
		r := g.Restock()
		if r < 20 || r > 79 {
			t.Fatalf("restock out of range: %d", r)
		}
		tr := g.Track()
		if tr.Status == statusDelivered && tr.ETAMinutes != 0 {
			t.Fatalf("delivered stop with eta %d", tr.ETAMinutes)
		}
		if tr.Status != statusDelivered && (tr.ETAMinutes < 5 || tr.ETAMinutes > 60) {
			t.Fatalf("eta out of range: %d", tr.ETAMinutes)
		}
		assert.InDelta(t, depot.Lat, tr.Location.Lat, 0.05)
		assert.InDelta(t, depot.Lng, tr.Location.Lng, 0.05)
	}
}

func TestConcurrentUse(t *testing.T) {
	g := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.SalesHistory()
				_ = g.Track()
			}
		}()
	}
	wg.Wait()
}
