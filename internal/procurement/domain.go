// Package procurement tracks purchase orders and the inbound shipments that fulfil them.
package procurement

import "github.com/supplyline/supplyline/internal/shared"

// Terminal statuses for supply-side documents. Other values are free-form.
const (
	StatusReceived  = "received"
	StatusCancelled = "cancelled"
)

// TerminalStatuses lists statuses that close a purchase order or shipment.
var TerminalStatuses = []string{StatusReceived, StatusCancelled}

// Item is a purchase order line.
type Item struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  shared.Quantity `json:"quantity" validate:"min=0"`
	Price     float64         `json:"price" validate:"min=0"`
}

// PurchaseOrder is stored as sent; Total is computed on read.
type PurchaseOrder struct {
	ID               string `json:"id"`
	SupplierID       string `json:"supplier_id"`
	Items            []Item `json:"items"`
	Status           string `json:"status"`
	OrderDate        string `json:"order_date"`
	ExpectedDelivery string `json:"expected_delivery"`
}

// PurchaseOrderView adds the order value.
type PurchaseOrderView struct {
	PurchaseOrder
	Total float64 `json:"total"`
}

func viewOf(po PurchaseOrder) PurchaseOrderView {
	lines := make([]shared.Line, len(po.Items))
	for i, it := range po.Items {
		lines[i] = shared.Line{Quantity: int64(it.Quantity), Price: it.Price}
	}
	return PurchaseOrderView{PurchaseOrder: po, Total: shared.LineTotal(lines)}
}

// CreateOrderInput is the POST /purchase-orders payload.
type CreateOrderInput struct {
	ID               string `json:"id"`
	SupplierID       string `json:"supplier_id" validate:"required"`
	Items            []Item `json:"items" validate:"required,dive"`
	Status           string `json:"status" validate:"required"`
	OrderDate        string `json:"order_date" validate:"required"`
	ExpectedDelivery string `json:"expected_delivery" validate:"required"`
}

// UpdateOrderInput is the PUT payload; nil fields keep the stored value.
type UpdateOrderInput struct {
	ID               string   `json:"id,omitempty"`
	SupplierID       *string  `json:"supplier_id,omitempty" validate:"omitnil,min=1"`
	Items            *[]Item  `json:"items,omitempty" validate:"omitnil,dive"`
	Status           *string  `json:"status,omitempty" validate:"omitnil,min=1"`
	OrderDate        *string  `json:"order_date,omitempty"`
	ExpectedDelivery *string  `json:"expected_delivery,omitempty"`
	// Total is echoed back by clients and ignored.
	Total *float64 `json:"total,omitempty"`
}

// Shipment is an inbound delivery against a purchase order.
type Shipment struct {
	ID               string `json:"id"`
	PurchaseOrderID  string `json:"purchase_order_id"`
	WarehouseID      string `json:"warehouse_id"`
	Status           string `json:"status"`
	ExpectedDelivery string `json:"expected_delivery"`
	ActualDelivery   string `json:"actual_delivery,omitempty"`
}

// CreateShipmentInput is the POST /shipments payload.
type CreateShipmentInput struct {
	ID               string `json:"id"`
	PurchaseOrderID  string `json:"purchase_order_id" validate:"required"`
	WarehouseID      string `json:"warehouse_id" validate:"required"`
	Status           string `json:"status" validate:"required"`
	ExpectedDelivery string `json:"expected_delivery" validate:"required"`
	ActualDelivery   string `json:"actual_delivery"`
}

// UpdateShipmentInput is the PUT payload; nil fields keep the stored value.
type UpdateShipmentInput struct {
	ID               string  `json:"id,omitempty"`
	PurchaseOrderID  *string `json:"purchase_order_id,omitempty" validate:"omitnil,min=1"`
	WarehouseID      *string `json:"warehouse_id,omitempty" validate:"omitnil,min=1"`
	Status           *string `json:"status,omitempty" validate:"omitnil,min=1"`
	ExpectedDelivery *string `json:"expected_delivery,omitempty"`
	ActualDelivery   *string `json:"actual_delivery,omitempty"`
}
