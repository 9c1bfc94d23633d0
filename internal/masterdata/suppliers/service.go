package suppliers

import (
	"context"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store"
)

// Service manages suppliers.
type Service struct {
	records *store.Records[Supplier]
}

// NewService binds the service to the suppliers collection.
func NewService(s store.Store) *Service {
	return &Service{records: store.NewRecords[Supplier](s, store.Suppliers)}
}

// List returns suppliers; limit <= 0 means all.
func (s *Service) List(ctx context.Context, limit int) ([]Supplier, error) {
	return s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
}

// Get returns the supplier with id.
func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a supplier.
func (s *Service) Create(ctx context.Context, in CreateInput) (Supplier, error) {
	if err := httpx.Validate(in); err != nil {
		return Supplier{}, err
	}
	return s.records.Create(ctx, Supplier{
		Name:             in.Name,
		ContactInfo:      in.ContactInfo,
		LeadTimeDays:     in.LeadTimeDays.Int64(),
		ReliabilityScore: *in.ReliabilityScore,
	})
}

// Update applies the fields set in in to supplier id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Supplier, error) {
	if err := httpx.Validate(in); err != nil {
		return Supplier{}, err
	}
	return s.records.Patch(ctx, id, in)
}

// Delete removes a supplier.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
