package sales

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store/memstore"
)

func newOrder() CreateInput {
	return CreateInput{
		CustomerInfo:    &Customer{Name: "Dana", Email: "dana@example.com", Phone: "555-0100"},
		Items:           []Item{{ProductID: "p-1", Quantity: 2, Price: 19.99}},
		Status:          "pending",
		DeliveryAddress: "12 Elm St",
		PlacedDate:      "2024-04-02",
	}
}

func TestOrderLifecycle(t *testing.T) {
	svc := NewService(memstore.New())
	ctx := context.Background()

	o, err := svc.Create(ctx, newOrder())
	require.NoError(t, err)
	assert.Equal(t, 39.98, o.Total)
	assert.Equal(t, "Dana", o.CustomerInfo.Name)

	status := StatusDelivered
	o, err = svc.Update(ctx, o.ID, UpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, o.Status)
	assert.Equal(t, "12 Elm St", o.DeliveryAddress)
	assert.Equal(t, 39.98, o.Total)

	list, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestOrderValidation(t *testing.T) {
	svc := NewService(memstore.New())
	in := newOrder()
	in.CustomerInfo.Email = "not-an-email"
	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "field customer_info.email must be a valid email", err.Error())

	in = newOrder()
	in.CustomerInfo = nil
	_, err = svc.Create(context.Background(), in)
	require.ErrorIs(t, err, httpx.ErrValidation)
	assert.Equal(t, "missing required field: customer_info", err.Error())
}
