package products

import (
	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/inventory"
)

// Product is a stocked item. Status is derived from Stock and MinStock on every write.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	SKU           string            `json:"sku"`
	Category      string            `json:"category,omitempty"`
	Stock         int64             `json:"stock"`
	MinStock      int64             `json:"min_stock"`
	Price         float64           `json:"price"`
	Supplier      string            `json:"supplier,omitempty"`
	Status        inventory.Status  `json:"status"`
	LastRestocked string            `json:"lastRestocked,omitempty"`
	SalesHistory  []forecast.Point  `json:"sales_history,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

// Level returns the figures the valuation rules read.
func (p Product) Level() inventory.StockLevel {
	return inventory.StockLevel{Stock: p.Stock, MinStock: p.MinStock, Price: p.Price}
}

// View is the wire form of a product. The UI keys products by `_id`.
type View struct {
	Product
	LegacyID string `json:"_id"`
}

// NewView wraps p for responses.
func NewView(p Product) View {
	return View{Product: p, LegacyID: p.ID}
}

func views(items []Product) []View {
	out := make([]View, len(items))
	for i, p := range items {
		out[i] = NewView(p)
	}
	return out
}
