package warehouses

// Warehouse is a stocking location.
type Warehouse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateInput is the POST payload.
type CreateInput struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// UpdateInput is the PUT payload; nil fields keep the stored value.
type UpdateInput struct {
	ID      string  `json:"id,omitempty"`
	Name    *string `json:"name,omitempty" validate:"omitnil,min=1"`
	Address *string `json:"address,omitempty" validate:"omitnil,min=1"`
}
