// Package delivery records outbound deliveries of customer orders and
// reports their last-mile progress.
package delivery

import "github.com/supplyline/supplyline/internal/sampledata"

// Delivery is the fulfilment record for a customer order.
type Delivery struct {
	ID              string `json:"id"`
	OrderID         string `json:"order_id"`
	Status          string `json:"status"`
	DeliveryDate    string `json:"delivery_date"`
	ProofOfDelivery string `json:"proof_of_delivery,omitempty"`
}

// CreateInput is the POST /deliveries payload.
type CreateInput struct {
	ID              string `json:"id"`
	OrderID         string `json:"order_id" validate:"required"`
	Status          string `json:"status" validate:"required"`
	DeliveryDate    string `json:"delivery_date" validate:"required"`
	ProofOfDelivery string `json:"proof_of_delivery"`
}

// UpdateInput is the PUT payload; nil fields keep the stored value.
type UpdateInput struct {
	ID              string  `json:"id,omitempty"`
	OrderID         *string `json:"order_id,omitempty" validate:"omitnil,min=1"`
	Status          *string `json:"status,omitempty" validate:"omitnil,min=1"`
	DeliveryDate    *string `json:"delivery_date,omitempty"`
	ProofOfDelivery *string `json:"proof_of_delivery,omitempty"`
}

// LastMile is the courier view of an open delivery.
type LastMile struct {
	ID              string              `json:"id"`
	OrderID         string              `json:"orderId"`
	Driver          sampledata.Driver   `json:"driver"`
	Status          string              `json:"status"`
	ETAMinutes      int                 `json:"etaMinutes"`
	CurrentLocation sampledata.Position `json:"currentLocation"`
}
