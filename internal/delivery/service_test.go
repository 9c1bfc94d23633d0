package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supplyline/supplyline/internal/sampledata"
	"github.com/supplyline/supplyline/internal/store/memstore"
)

type fixedTracker struct{ t sampledata.Tracking }

func (f fixedTracker) Track() sampledata.Tracking { return f.t }

func seed(t *testing.T, svc *Service, statuses ...string) {
	t.Helper()
	for i, status := range statuses {
		_, err := svc.Create(context.Background(), CreateInput{
			OrderID:      "ord-" + string(rune('a'+i)),
			Status:       status,
			DeliveryDate: "2024-07-01",
		})
		require.NoError(t, err)
	}
}

func TestLastMileSkipsClosedDeliveries(t *testing.T) {
	svc := NewService(memstore.New(), nil)
	seed(t, svc, "out_for_delivery", "delivered", "cancelled", "pending")

	out, err := svc.LastMile(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "out_for_delivery", out[0].Status)
	assert.Equal(t, "ord-a", out[0].OrderID)
	assert.Empty(t, out[0].Driver.Name)
	assert.Zero(t, out[0].ETAMinutes)
	assert.Equal(t, "pending", out[1].Status)
}

func TestLastMileUsesTracker(t *testing.T) {
	tr := fixedTracker{t: sampledata.Tracking{
		Driver:     sampledata.Driver{Name: "Alex Green", Avatar: "a.png"},
		Status:     "Delayed",
		ETAMinutes: 17,
		Location:   sampledata.Position{Lat: 34.05, Lng: -118.24},
	}}
	svc := NewService(memstore.New(), tr)
	seed(t, svc, "out_for_delivery")

	router := chi.NewRouter()
	NewLastMileHandler(nil, svc).MountRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/last-mile-deliveries", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "ord-a", body[0]["orderId"])
	assert.Equal(t, "Delayed", body[0]["status"])
	assert.Equal(t, float64(17), body[0]["etaMinutes"])
	assert.Equal(t, map[string]any{"name": "Alex Green", "avatar": "a.png"}, body[0]["driver"])
	assert.Equal(t, map[string]any{"lat": 34.05, "lng": -118.24}, body[0]["currentLocation"])
}

func TestDeliveryProofUpdate(t *testing.T) {
	svc := NewService(memstore.New(), nil)
	d, err := svc.Create(context.Background(), CreateInput{OrderID: "ord-1", Status: "pending", DeliveryDate: "2024-07-01"})
	require.NoError(t, err)
	assert.Empty(t, d.ProofOfDelivery)

	proof := "signed by J. Doe"
	status := "delivered"
	d, err = svc.Update(context.Background(), d.ID, UpdateInput{Status: &status, ProofOfDelivery: &proof})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", d.OrderID)
	assert.Equal(t, proof, d.ProofOfDelivery)
}
