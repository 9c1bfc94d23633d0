package sales

import (
	"context"
	"log/slog"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/shared"
	"github.com/supplyline/supplyline/internal/store"
)

// Service manages customer orders.
type Service struct {
	records *store.Records[Order]
}

// NewService binds the service to the orders collection.
func NewService(s store.Store) *Service {
	return &Service{records: store.NewRecords[Order](s, store.Orders)}
}

// List returns customer orders with their computed totals.
func (s *Service) List(ctx context.Context, limit int) ([]OrderView, error) {
	items, err := s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]OrderView, len(items))
	for i, o := range items {
		out[i] = viewOf(o)
	}
	return out, nil
}

// Get returns order id with its total.
func (s *Service) Get(ctx context.Context, id string) (OrderView, error) {
	o, err := s.records.Get(ctx, id)
	if err != nil {
		return OrderView{}, err
	}
	return viewOf(o), nil
}

// Create validates and stores a customer order.
func (s *Service) Create(ctx context.Context, in CreateInput) (OrderView, error) {
	if err := httpx.Validate(in); err != nil {
		return OrderView{}, err
	}
	o, err := s.records.Create(ctx, Order{
		CustomerInfo:    *in.CustomerInfo,
		Items:           in.Items,
		Status:          in.Status,
		DeliveryAddress: in.DeliveryAddress,
		PlacedDate:      in.PlacedDate,
	})
	if err != nil {
		return OrderView{}, err
	}
	return viewOf(o), nil
}

// Update patches order id. A client supplied total is ignored.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (OrderView, error) {
	if err := httpx.Validate(in); err != nil {
		return OrderView{}, err
	}
	in.Total = nil
	o, err := s.records.Patch(ctx, id, in)
	if err != nil {
		return OrderView{}, err
	}
	return viewOf(o), nil
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// Handler serves /orders.
type Handler = shared.ResourceHandler[OrderView, CreateInput, UpdateInput]

// NewHandler exposes the order service over the generic CRUD routes.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return shared.NewResourceHandler[OrderView, CreateInput, UpdateInput](logger, "orders", service)
}
