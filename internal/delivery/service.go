package delivery

import (
	"context"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/sales"
	"github.com/supplyline/supplyline/internal/sampledata"
	"github.com/supplyline/supplyline/internal/store"
)

// Tracker reports the live courier state of a delivery.
type Tracker interface {
	Track() sampledata.Tracking
}

// Service manages deliveries.
type Service struct {
	records *store.Records[Delivery]
	tracker Tracker
}

// NewService binds the service to the deliveries collection. tracker may be nil.
func NewService(s store.Store, tracker Tracker) *Service {
	return &Service{records: store.NewRecords[Delivery](s, store.Deliveries), tracker: tracker}
}

// List returns deliveries in insertion order; limit <= 0 means all.
func (s *Service) List(ctx context.Context, limit int) ([]Delivery, error) {
	return s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
}

// Get returns the delivery with id.
func (s *Service) Get(ctx context.Context, id string) (Delivery, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a delivery.
func (s *Service) Create(ctx context.Context, in CreateInput) (Delivery, error) {
	if err := httpx.Validate(in); err != nil {
		return Delivery{}, err
	}
	return s.records.Create(ctx, Delivery{
		OrderID:         in.OrderID,
		Status:          in.Status,
		DeliveryDate:    in.DeliveryDate,
		ProofOfDelivery: in.ProofOfDelivery,
	})
}

// Update applies the fields set in in to delivery id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Delivery, error) {
	if err := httpx.Validate(in); err != nil {
		return Delivery{}, err
	}
	return s.records.Patch(ctx, id, in)
}

// Delete removes a delivery.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// LastMile lists open deliveries with courier data. Without a tracker the
// stored status is reported and courier fields stay empty.
func (s *Service) LastMile(ctx context.Context, limit int) ([]LastMile, error) {
	open, err := s.records.List(ctx, store.StatusNotIn(sales.TerminalStatuses...), store.FindOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]LastMile, 0, len(open))
	for _, d := range open {
		lm := LastMile{ID: d.ID, OrderID: d.OrderID, Status: d.Status}
		if s.tracker != nil {
			t := s.tracker.Track()
			lm.Driver = t.Driver
			lm.Status = t.Status
			lm.ETAMinutes = t.ETAMinutes
			lm.CurrentLocation = t.Location
		}
		out = append(out, lm)
	}
	return out, nil
}
