// Package sales tracks customer orders.
package sales

import "github.com/supplyline/supplyline/internal/shared"

// Terminal statuses for demand-side documents. Other values are free-form.
const (
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// TerminalStatuses lists statuses that close a customer order or delivery.
var TerminalStatuses = []string{StatusDelivered, StatusCancelled}

// Customer is the contact embedded in an order.
type Customer struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// Item is an order line.
type Item struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  shared.Quantity `json:"quantity" validate:"min=0"`
	Price     float64         `json:"price" validate:"min=0"`
}

// Order is a customer order; Total is computed on read.
type Order struct {
	ID              string   `json:"id"`
	CustomerInfo    Customer `json:"customer_info"`
	Items           []Item   `json:"items"`
	Status          string   `json:"status"`
	DeliveryAddress string   `json:"delivery_address"`
	PlacedDate      string   `json:"placed_date"`
}

// OrderView adds the order value.
type OrderView struct {
	Order
	Total float64 `json:"total"`
}

func viewOf(o Order) OrderView {
	lines := make([]shared.Line, len(o.Items))
	for i, it := range o.Items {
		lines[i] = shared.Line{Quantity: int64(it.Quantity), Price: it.Price}
	}
	return OrderView{Order: o, Total: shared.LineTotal(lines)}
}

// CreateInput is the POST /orders payload.
type CreateInput struct {
	ID              string    `json:"id"`
	CustomerInfo    *Customer `json:"customer_info" validate:"required"`
	Items           []Item    `json:"items" validate:"required,dive"`
	Status          string    `json:"status" validate:"required"`
	DeliveryAddress string    `json:"delivery_address" validate:"required"`
	PlacedDate      string    `json:"placed_date" validate:"required"`
}

// UpdateInput is the PUT payload; nil fields keep the stored value.
type UpdateInput struct {
	ID              string    `json:"id,omitempty"`
	CustomerInfo    *Customer `json:"customer_info,omitempty"`
	Items           *[]Item   `json:"items,omitempty" validate:"omitnil,dive"`
	Status          *string   `json:"status,omitempty" validate:"omitnil,min=1"`
	DeliveryAddress *string   `json:"delivery_address,omitempty"`
	PlacedDate      *string   `json:"placed_date,omitempty"`
	// Total is echoed back by clients and ignored.
	Total *float64 `json:"total,omitempty"`
}
