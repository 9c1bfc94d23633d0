package warehouses

import (
	"context"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store"
)

// Service manages warehouses.
type Service struct {
	records *store.Records[Warehouse]
}

// NewService binds the service to the warehouses collection.
func NewService(s store.Store) *Service {
	return &Service{records: store.NewRecords[Warehouse](s, store.Warehouses)}
}

// List returns warehouses; limit <= 0 means all.
func (s *Service) List(ctx context.Context, limit int) ([]Warehouse, error) {
	return s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
}

// Get returns the warehouse with id.
func (s *Service) Get(ctx context.Context, id string) (Warehouse, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a warehouse.
func (s *Service) Create(ctx context.Context, in CreateInput) (Warehouse, error) {
	if err := httpx.Validate(in); err != nil {
		return Warehouse{}, err
	}
	return s.records.Create(ctx, Warehouse{Name: in.Name, Address: in.Address})
}

// Update applies the fields set in in to warehouse id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Warehouse, error) {
	if err := httpx.Validate(in); err != nil {
		return Warehouse{}, err
	}
	return s.records.Patch(ctx, id, in)
}

// Delete removes a warehouse.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
