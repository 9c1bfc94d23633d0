package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want Quantity
	}{
		{`12`, 12},
		{`12.0`, 12},
		{`"7"`, 7},
		{`" 3 "`, 3},
		{`-4`, -4},
	}
	for _, tc := range cases {
		var q Quantity
		require.NoError(t, json.Unmarshal([]byte(tc.in), &q), tc.in)
		assert.Equal(t, tc.want, q, tc.in)
	}

	for _, bad := range []string{`"ten"`, `1.5`, `"1e400"`, `true`} {
		var q Quantity
		assert.Error(t, json.Unmarshal([]byte(bad), &q), bad)
	}

	var p struct {
		Stock *Quantity `json:"stock"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"stock":null}`), &p))
	assert.Nil(t, p.Stock)
	assert.Zero(t, p.Stock.Int64())
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 0.0, LineTotal(nil))
	assert.Equal(t, 0.3, LineTotal([]Line{{Quantity: 1, Price: 0.1}, {Quantity: 1, Price: 0.2}}))
	assert.Equal(t, 39.98, LineTotal([]Line{{Quantity: 2, Price: 19.99}}))
}
