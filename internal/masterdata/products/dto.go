package products

import (
	"github.com/shopspring/decimal"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/shared"
)

// CreateInput is the POST /products payload. ID, LegacyID and Status are
// accepted so UI round trips decode, and are ignored.
type CreateInput struct {
	Name          string            `json:"name" validate:"required"`
	SKU           string            `json:"sku" validate:"required"`
	Category      string            `json:"category" validate:"required"`
	Stock         *shared.Quantity  `json:"stock" validate:"required,min=0"`
	MinStock      *shared.Quantity  `json:"min_stock" validate:"omitnil,min=0"`
	Price         *decimal.Decimal  `json:"price" validate:"required"`
	Supplier      string            `json:"supplier" validate:"required"`
	LastRestocked string            `json:"lastRestocked"`
	SalesHistory  []forecast.Point  `json:"sales_history"`
	Attributes    map[string]string `json:"attributes"`

	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	Status   string `json:"status"`
}

// UpdateInput is the PUT /products/{id} payload; nil fields keep the stored value.
type UpdateInput struct {
	Name          *string           `json:"name" validate:"omitnil,min=1"`
	SKU           *string           `json:"sku" validate:"omitnil,min=1"`
	Category      *string           `json:"category"`
	Stock         *shared.Quantity  `json:"stock" validate:"omitnil,min=0"`
	MinStock      *shared.Quantity  `json:"min_stock" validate:"omitnil,min=0"`
	Price         *decimal.Decimal  `json:"price"`
	Supplier      *string           `json:"supplier"`
	LastRestocked *string           `json:"lastRestocked"`
	SalesHistory  []forecast.Point  `json:"sales_history"`
	Attributes    map[string]string `json:"attributes"`

	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	Status   string `json:"status"`
}

// patch is the stored-field delta of an update.
type patch struct {
	Name          *string           `json:"name,omitempty"`
	SKU           *string           `json:"sku,omitempty"`
	Category      *string           `json:"category,omitempty"`
	Stock         *int64            `json:"stock,omitempty"`
	MinStock      *int64            `json:"min_stock,omitempty"`
	Price         *float64          `json:"price,omitempty"`
	Supplier      *string           `json:"supplier,omitempty"`
	Status        string            `json:"status"`
	LastRestocked *string           `json:"lastRestocked,omitempty"`
	SalesHistory  []forecast.Point  `json:"sales_history,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

type historyPatch struct {
	SalesHistory []forecast.Point `json:"sales_history"`
}
