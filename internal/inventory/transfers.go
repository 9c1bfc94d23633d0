package inventory

import (
	"context"
	"log/slog"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/shared"
	"github.com/supplyline/supplyline/internal/store"
)

// TransferItem is a product moved between warehouses.
type TransferItem struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  shared.Quantity `json:"quantity" validate:"min=0"`
}

// Transfer records stock moving between two warehouses. Stock levels are not
// adjusted; the record is informational.
type Transfer struct {
	ID            string         `json:"id"`
	FromWarehouse string         `json:"from_warehouse"`
	ToWarehouse   string         `json:"to_warehouse"`
	Items         []TransferItem `json:"items"`
	Status        string         `json:"status"`
	TransferDate  string         `json:"transfer_date"`
}

// CreateTransferInput is the POST /stock-transfers payload.
type CreateTransferInput struct {
	ID            string         `json:"id"`
	FromWarehouse string         `json:"from_warehouse" validate:"required"`
	ToWarehouse   string         `json:"to_warehouse" validate:"required"`
	Items         []TransferItem `json:"items" validate:"required,dive"`
	Status        string         `json:"status" validate:"required"`
	TransferDate  string         `json:"transfer_date" validate:"required"`
}

// UpdateTransferInput is the PUT payload; nil fields keep the stored value.
type UpdateTransferInput struct {
	ID            string          `json:"id,omitempty"`
	FromWarehouse *string         `json:"from_warehouse,omitempty" validate:"omitnil,min=1"`
	ToWarehouse   *string         `json:"to_warehouse,omitempty" validate:"omitnil,min=1"`
	Items         *[]TransferItem `json:"items,omitempty" validate:"omitnil,dive"`
	Status        *string         `json:"status,omitempty" validate:"omitnil,min=1"`
	TransferDate  *string         `json:"transfer_date,omitempty"`
}

// TransferService manages stock transfers.
type TransferService struct {
	records *store.Records[Transfer]
}

// NewTransferService binds the service to the stock_transfers collection.
func NewTransferService(s store.Store) *TransferService {
	return &TransferService{records: store.NewRecords[Transfer](s, store.StockTransfers)}
}

// List returns stock transfers; limit <= 0 means all.
func (s *TransferService) List(ctx context.Context, limit int) ([]Transfer, error) {
	return s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
}

// Get returns the transfer with id.
func (s *TransferService) Get(ctx context.Context, id string) (Transfer, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a transfer. Stock levels are not moved.
func (s *TransferService) Create(ctx context.Context, in CreateTransferInput) (Transfer, error) {
	if err := httpx.Validate(in); err != nil {
		return Transfer{}, err
	}
	return s.records.Create(ctx, Transfer{
		FromWarehouse: in.FromWarehouse,
		ToWarehouse:   in.ToWarehouse,
		Items:         in.Items,
		Status:        in.Status,
		TransferDate:  in.TransferDate,
	})
}

// Update applies the fields set in in to transfer id.
func (s *TransferService) Update(ctx context.Context, id string, in UpdateTransferInput) (Transfer, error) {
	if err := httpx.Validate(in); err != nil {
		return Transfer{}, err
	}
	return s.records.Patch(ctx, id, in)
}

// Delete removes a transfer.
func (s *TransferService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// TransferHandler serves /stock-transfers.
type TransferHandler = shared.ResourceHandler[Transfer, CreateTransferInput, UpdateTransferInput]

// NewTransferHandler exposes the transfer service over the generic CRUD routes.
func NewTransferHandler(logger *slog.Logger, service *TransferService) *TransferHandler {
	return shared.NewResourceHandler[Transfer, CreateTransferInput, UpdateTransferInput](logger, "stock transfers", service)
}
