package products

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/shared"
	"github.com/supplyline/supplyline/internal/store"
	"github.com/supplyline/supplyline/internal/store/memstore"
)

type fixedHistory struct{ calls int }

func (f *fixedHistory) SalesHistory() []forecast.Point {
	f.calls++
	return []forecast.Point{{Period: "Month 1", Sales: 60}, {Period: "Month 2", Sales: 70}}
}

func qty(n int64) *shared.Quantity {
	q := shared.Quantity(n)
	return &q
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validInput() CreateInput {
	return CreateInput{
		Name:     "Widget",
		SKU:      "W-1",
		Category: "Widgets",
		Stock:    qty(4),
		MinStock: qty(10),
		Price:    price("2.50"),
		Supplier: "Acme",
	}
}

func TestCreateDerivesStatusAndRoundTrips(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	ctx := context.Background()

	in := validInput()
	in.Status = "In Stock"
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, inventory.StatusCritical, created.Status)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.Equal(t, "Widget", fetched.Name)
	assert.Equal(t, int64(4), fetched.Stock)
	assert.Equal(t, int64(10), fetched.MinStock)
	assert.Equal(t, 2.5, fetched.Price)
	assert.Empty(t, fetched.SalesHistory, "no generator configured")
}

func TestCreateAddsGeneratedHistory(t *testing.T) {
	gen := &fixedHistory{}
	svc := NewService(memstore.New(), gen, nil)
	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.Len(t, created.SalesHistory, 2)
	assert.Equal(t, 1, gen.calls)
}

func TestCreateMissingRequiredField(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	in := validInput()
	in.SKU = ""
	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "missing required field: sku", err.Error())

	in = validInput()
	in.Stock = nil
	_, err = svc.Create(context.Background(), in)
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "missing required field: stock", err.Error())
}

func TestCreateRejectsNegativeValues(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	in := validInput()
	in.Stock = qty(-1)
	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, httpx.ErrValidation)

	in = validInput()
	in.Price = price("-3")
	_, err = svc.Create(context.Background(), in)
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestCreateInputAcceptsNumericStrings(t *testing.T) {
	var in CreateInput
	raw := `{"name":"Bolt","sku":"B-1","category":"Hardware","stock":"25","min_stock":"10","price":"1.25","supplier":"Acme"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &in))
	assert.Equal(t, int64(25), in.Stock.Int64())
	assert.Equal(t, int64(10), in.MinStock.Int64())
	assert.True(t, in.Price.Equal(decimal.RequireFromString("1.25")))

	err := json.Unmarshal([]byte(`{"stock":"lots"}`), &in)
	require.Error(t, err)
}

func TestUpdateMergesOntoStoredProduct(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	// only min_stock changes; stored stock of 4 must be kept
	updated, err := svc.Update(ctx, created.ID, UpdateInput{MinStock: qty(2)})
	require.NoError(t, err)
	assert.Equal(t, int64(4), updated.Stock)
	assert.Equal(t, int64(2), updated.MinStock)
	assert.Equal(t, inventory.StatusInStock, updated.Status)
	assert.Equal(t, "Widget", updated.Name)

	name := "Gadget"
	updated, err = svc.Update(ctx, created.ID, UpdateInput{Name: &name, Stock: qty(0), Status: "In Stock"})
	require.NoError(t, err)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, inventory.StatusCritical, updated.Status)
}

func TestUpdateAndDeleteErrors(t *testing.T) {
	svc := NewService(memstore.New(), nil, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "not-an-id", UpdateInput{})
	require.ErrorIs(t, err, store.ErrInvalidID)

	_, err = svc.Update(ctx, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", UpdateInput{})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Delete(ctx, "1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	require.True(t, errors.Is(err, store.ErrNotFound))

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEnsureHistoryAndBackfill(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	plain := NewService(st, nil, nil)
	a, err := plain.Create(ctx, validInput())
	require.NoError(t, err)
	b, err := plain.Create(ctx, validInput())
	require.NoError(t, err)

	same, err := plain.EnsureHistory(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, same.SalesHistory)

	gen := &fixedHistory{}
	svc := NewService(st, gen, nil)
	filled, err := svc.BackfillHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, filled)

	for _, id := range []string{a.ID, b.ID} {
		p, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Len(t, p.SalesHistory, 2)
	}

	withHistory, err := svc.ListWithHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, withHistory, 1)

	filled, err = svc.BackfillHistory(ctx)
	require.NoError(t, err)
	assert.Zero(t, filled)
}
