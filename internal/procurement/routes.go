package procurement

import (
	"log/slog"

	"github.com/supplyline/supplyline/internal/shared"
)

// OrderHandler serves /purchase-orders.
type OrderHandler = shared.ResourceHandler[PurchaseOrderView, CreateOrderInput, UpdateOrderInput]

// ShipmentHandler serves /shipments.
type ShipmentHandler = shared.ResourceHandler[Shipment, CreateShipmentInput, UpdateShipmentInput]

// NewOrderHandler exposes the purchase order service over the generic CRUD routes.
func NewOrderHandler(logger *slog.Logger, service *OrderService) *OrderHandler {
	return shared.NewResourceHandler[PurchaseOrderView, CreateOrderInput, UpdateOrderInput](logger, "purchase orders", service)
}

// NewShipmentHandler exposes the shipment service over the generic CRUD routes.
func NewShipmentHandler(logger *slog.Logger, service *ShipmentService) *ShipmentHandler {
	return shared.NewResourceHandler[Shipment, CreateShipmentInput, UpdateShipmentInput](logger, "shipments", service)
}
