package suppliers

import "github.com/supplyline/supplyline/internal/shared"

// Supplier is a vendor of products.
type Supplier struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ContactInfo      string  `json:"contact_info"`
	LeadTimeDays     int64   `json:"lead_time_days"`
	ReliabilityScore float64 `json:"reliability_score"`
}

// CreateInput is the POST payload.
type CreateInput struct {
	ID               string           `json:"id"`
	Name             string           `json:"name" validate:"required"`
	ContactInfo      string           `json:"contact_info" validate:"required"`
	LeadTimeDays     *shared.Quantity `json:"lead_time_days" validate:"required,min=0"`
	ReliabilityScore *float64         `json:"reliability_score" validate:"required,min=0,max=1"`
}

// UpdateInput is the PUT payload; nil fields keep the stored value.
type UpdateInput struct {
	ID               string           `json:"id,omitempty"`
	Name             *string          `json:"name,omitempty" validate:"omitnil,min=1"`
	ContactInfo      *string          `json:"contact_info,omitempty"`
	LeadTimeDays     *shared.Quantity `json:"lead_time_days,omitempty" validate:"omitnil,min=0"`
	ReliabilityScore *float64         `json:"reliability_score,omitempty" validate:"omitnil,min=0,max=1"`
}
