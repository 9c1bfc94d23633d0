package products

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store"
)

// HistorySource supplies synthetic sales history for products that have none.
type HistorySource interface {
	SalesHistory() []forecast.Point
}

// Service manages the product catalogue.
type Service struct {
	records *store.Records[Product]
	history HistorySource
	logger  *slog.Logger
}

// NewService binds the service to the products collection. history may be nil.
func NewService(s store.Store, history HistorySource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		records: store.NewRecords[Product](s, store.Products),
		history: history,
		logger:  logger,
	}
}

// List returns products in insertion order.
func (s *Service) List(ctx context.Context, limit int) ([]Product, error) {
	return s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
}

// ListWithHistory returns up to limit products carrying sales history.
func (s *Service) ListWithHistory(ctx context.Context, limit int) ([]Product, error) {
	return s.records.List(ctx, store.HasEntries("sales_history"), store.FindOptions{Limit: limit})
}

// Get loads a product.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.records.Get(ctx, id)
}

// Count returns the catalogue size.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.records.Count(ctx, store.Filter{})
}

// Create validates and stores a product with a derived status.
func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	if err := httpx.Validate(in); err != nil {
		return Product{}, err
	}
	if in.Price.IsNegative() {
		return Product{}, httpx.Invalidf("field price must be at least 0")
	}
	p := Product{
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		Stock:         in.Stock.Int64(),
		MinStock:      in.MinStock.Int64(),
		Price:         in.Price.InexactFloat64(),
		Supplier:      in.Supplier,
		LastRestocked: in.LastRestocked,
		SalesHistory:  in.SalesHistory,
		Attributes:    in.Attributes,
	}
	return s.insert(ctx, p)
}

func (s *Service) prepare(p Product) Product {
	p.Status = inventory.DeriveStatus(p.Stock, p.MinStock)
	if len(p.SalesHistory) == 0 && s.history != nil {
		p.SalesHistory = s.history.SalesHistory()
	}
	return p
}

func (s *Service) insert(ctx context.Context, p Product) (Product, error) {
	created, err := s.records.Create(ctx, s.prepare(p))
	if err != nil {
		return Product{}, fmt.Errorf("products: create: %w", err)
	}
	return created, nil
}

// Update merges in onto the stored product and re-derives its status.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Product, error) {
	if err := httpx.Validate(in); err != nil {
		return Product{}, err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return Product{}, httpx.Invalidf("field price must be at least 0")
	}
	current, err := s.records.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	delta := patch{
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		Supplier:      in.Supplier,
		LastRestocked: in.LastRestocked,
		SalesHistory:  in.SalesHistory,
		Attributes:    in.Attributes,
	}
	stock, minStock := current.Stock, current.MinStock
	if in.Stock != nil {
		stock = in.Stock.Int64()
		delta.Stock = &stock
	}
	if in.MinStock != nil {
		minStock = in.MinStock.Int64()
		delta.MinStock = &minStock
	}
	if in.Price != nil {
		price := in.Price.InexactFloat64()
		delta.Price = &price
	}
	delta.Status = string(inventory.DeriveStatus(stock, minStock))

	updated, err := s.records.Patch(ctx, id, delta)
	if err != nil {
		return Product{}, err
	}
	return updated, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// EnsureHistory returns p with sales history, generating and persisting one
// when p has none and a HistorySource is configured.
func (s *Service) EnsureHistory(ctx context.Context, p Product) (Product, error) {
	if len(p.SalesHistory) > 0 || s.history == nil {
		return p, nil
	}
	generated := s.history.SalesHistory()
	if _, err := s.records.Patch(ctx, p.ID, historyPatch{SalesHistory: generated}); err != nil {
		return Product{}, fmt.Errorf("products: store history %s: %w", p.ID, err)
	}
	p.SalesHistory = generated
	return p, nil
}

// BackfillHistory gives every product without history a generated one.
func (s *Service) BackfillHistory(ctx context.Context) (int, error) {
	if s.history == nil {
		return 0, nil
	}
	all, err := s.records.List(ctx, store.Filter{}, store.FindOptions{})
	if err != nil {
		return 0, err
	}
	filled := 0
	for _, p := range all {
		if len(p.SalesHistory) > 0 {
			continue
		}
		if _, err := s.EnsureHistory(ctx, p); err != nil {
			return filled, err
		}
		filled++
	}
	if filled > 0 {
		s.logger.Info("sales history backfilled", slog.Int("products", filled))
	}
	return filled, nil
}
