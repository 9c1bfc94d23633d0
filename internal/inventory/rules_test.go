package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatusBoundaries(t *testing.T) {
	cases := []struct {
		stock, min int64
		want       Status
	}{
		{0, 10, StatusCritical},
		{5, 10, StatusCritical},
		{6, 10, StatusLow},
		{10, 10, StatusLow},
		{11, 10, StatusInStock},
		{0, 0, StatusCritical},
		{1, 0, StatusInStock},
		{2, 5, StatusCritical},
		{3, 5, StatusLow},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, DeriveStatus(tc.stock, tc.min), "stock=%d min=%d", tc.stock, tc.min)
	}
}

func TestDeriveStatusMonotonicInStock(t *testing.T) {
	for min := int64(0); min <= 40; min++ {
		prev := DeriveStatus(0, min)
		for stock := int64(1); stock <= 100; stock++ {
			cur := DeriveStatus(stock, min)
			if MoreSevere(cur, prev) {
				t.Fatalf("status got worse at stock=%d min=%d: %s -> %s", stock, min, prev, cur)
			}
			prev = cur
		}
	}
}

func TestDeriveReorder(t *testing.T) {
	_, ok := DeriveReorder(10, 10)
	require.False(t, ok, "stock equal to min_stock must not reorder")
	_, ok = DeriveReorder(25, 10)
	require.False(t, ok)

	r, ok := DeriveReorder(2, 10)
	require.True(t, ok)
	assert.Equal(t, int64(13), r.SuggestedOrder)
	assert.Equal(t, PriorityHigh, r.Priority)

	r, ok = DeriveReorder(6, 10)
	require.True(t, ok)
	assert.Equal(t, int64(9), r.SuggestedOrder)
	assert.Equal(t, PriorityMedium, r.Priority)

	r, ok = DeriveReorder(8, 10)
	require.True(t, ok)
	assert.Equal(t, int64(7), r.SuggestedOrder)
	assert.Equal(t, PriorityLow, r.Priority)

	r, ok = DeriveReorder(0, 7)
	require.True(t, ok)
	assert.Equal(t, int64(10), r.SuggestedOrder, "floor of 10.5")
}

func TestEstimateSavings(t *testing.T) {
	assert.Equal(t, int64(10), EstimateSavings([]StockLevel{{Stock: 0, MinStock: 10, Price: 5}}))
	// overstock: (40 - 15) * 2 * 0.1 = 5
	assert.Equal(t, int64(5), EstimateSavings([]StockLevel{{Stock: 40, MinStock: 10, Price: 2}}))
	// between min and optimal contributes nothing
	assert.Equal(t, int64(0), EstimateSavings([]StockLevel{{Stock: 12, MinStock: 10, Price: 100}}))
	// 10 + 5 + 0.2*1*1.5 = 15.3 -> 15
	assert.Equal(t, int64(15), EstimateSavings([]StockLevel{
		{Stock: 0, MinStock: 10, Price: 5},
		{Stock: 40, MinStock: 10, Price: 2},
		{Stock: 0, MinStock: 1, Price: 1.5},
	}))
	assert.Equal(t, int64(0), EstimateSavings(nil))
}
