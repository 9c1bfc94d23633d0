package procurement

import (
	"context"

	"github.com/supplyline/supplyline/internal/platform/httpx"
	"github.com/supplyline/supplyline/internal/store"
)

// OrderService manages purchase orders.
type OrderService struct {
	records *store.Records[PurchaseOrder]
}

// NewOrderService binds the service to the purchase_orders collection.
func NewOrderService(s store.Store) *OrderService {
	return &OrderService{records: store.NewRecords[PurchaseOrder](s, store.PurchaseOrders)}
}

// List returns purchase orders with their computed totals.
func (s *OrderService) List(ctx context.Context, limit int) ([]PurchaseOrderView, error) {
	items, err := s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
	if err != nil {
		return nil, err
	}
	out := make([]PurchaseOrderView, len(items))
	for i, po := range items {
		out[i] = viewOf(po)
	}
	return out, nil
}

// Get returns purchase order id with its total.
func (s *OrderService) Get(ctx context.Context, id string) (PurchaseOrderView, error) {
	po, err := s.records.Get(ctx, id)
	if err != nil {
		return PurchaseOrderView{}, err
	}
	return viewOf(po), nil
}

// Create validates and stores a purchase order.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (PurchaseOrderView, error) {
	if err := httpx.Validate(in); err != nil {
		return PurchaseOrderView{}, err
	}
	po, err := s.records.Create(ctx, PurchaseOrder{
		SupplierID:       in.SupplierID,
		Items:            in.Items,
		Status:           in.Status,
		OrderDate:        in.OrderDate,
		ExpectedDelivery: in.ExpectedDelivery,
	})
	if err != nil {
		return PurchaseOrderView{}, err
	}
	return viewOf(po), nil
}

// Update patches purchase order id. A client supplied total is ignored.
func (s *OrderService) Update(ctx context.Context, id string, in UpdateOrderInput) (PurchaseOrderView, error) {
	if err := httpx.Validate(in); err != nil {
		return PurchaseOrderView{}, err
	}
	in.Total = nil
	po, err := s.records.Patch(ctx, id, in)
	if err != nil {
		return PurchaseOrderView{}, err
	}
	return viewOf(po), nil
}

// Delete removes a purchase order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// ShipmentService manages inbound shipments.
type ShipmentService struct {
	records *store.Records[Shipment]
}

// NewShipmentService binds the service to the shipments collection.
func NewShipmentService(s store.Store) *ShipmentService {
	return &ShipmentService{records: store.NewRecords[Shipment](s, store.Shipments)}
}

// List returns shipments; limit <= 0 means all.
func (s *ShipmentService) List(ctx context.Context, limit int) ([]Shipment, error) {
	return s.records.List(ctx, store.Filter{}, store.FindOptions{Limit: limit})
}

// Get returns the shipment with id.
func (s *ShipmentService) Get(ctx context.Context, id string) (Shipment, error) {
	return s.records.Get(ctx, id)
}

// Create validates and stores a shipment.
func (s *ShipmentService) Create(ctx context.Context, in CreateShipmentInput) (Shipment, error) {
	if err := httpx.Validate(in); err != nil {
		return Shipment{}, err
	}
	return s.records.Create(ctx, Shipment{
		PurchaseOrderID:  in.PurchaseOrderID,
		WarehouseID:      in.WarehouseID,
		Status:           in.Status,
		ExpectedDelivery: in.ExpectedDelivery,
		ActualDelivery:   in.ActualDelivery,
	})
}

// Update applies the fields set in in to shipment id.
func (s *ShipmentService) Update(ctx context.Context, id string, in UpdateShipmentInput) (Shipment, error) {
	if err := httpx.Validate(in); err != nil {
		return Shipment{}, err
	}
	return s.records.Patch(ctx, id, in)
}

// Delete removes a shipment.
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}
