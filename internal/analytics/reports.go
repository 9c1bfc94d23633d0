package analytics

import (
	"sort"

	"github.com/supplyline/supplyline/internal/forecast"
	"github.com/supplyline/supplyline/internal/inventory"
	"github.com/supplyline/supplyline/internal/masterdata/products"
)

// DefaultCategory groups products without a category.
const DefaultCategory = "Uncategorized"

// optimalFactor scales min_stock into the target stock level.
const optimalFactor = 1.5

// CategoryStock compares held and target stock for one category.
type CategoryStock struct {
	Category string  `json:"category"`
	Current  int64   `json:"current"`
	Optimal  float64 `json:"optimal"`
}

// ReorderRecommendation is one under-stocked product.
type ReorderRecommendation struct {
	ProductID      string             `json:"product_id"`
	Product        string             `json:"product"`
	CurrentStock   int64              `json:"currentStock"`
	ReorderPoint   int64              `json:"reorderPoint"`
	SuggestedOrder int64              `json:"suggestedOrder"`
	Priority       inventory.Priority `json:"priority"`
}

// Optimization is the GET /optimize payload.
type Optimization struct {
	ChartData              []CategoryStock         `json:"chart_data"`
	ReorderRecommendations []ReorderRecommendation `json:"reorder_recommendations"`
}

// MonthMovement is one month of the stock movement chart.
type MonthMovement struct {
	Month     string `json:"month"`
	InStock   int64  `json:"inStock"`
	Sold      int64  `json:"sold"`
	Restocked int64  `json:"restocked"`
}

// Summary holds the supply-chain dashboard counters.
type Summary struct {
	TotalSuppliers     int64 `json:"total_suppliers"`
	TotalWarehouses    int64 `json:"total_warehouses"`
	TotalProducts      int64 `json:"total_products"`
	OpenPurchaseOrders int64 `json:"open_purchase_orders"`
	OpenCustomerOrders int64 `json:"open_customer_orders"`
	OpenDeliveries     int64 `json:"open_deliveries"`
	OpenShipments      int64 `json:"open_shipments"`
}

var movementMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// AggregateByCategory sums current and optimal stock per category, sorted by name.
func AggregateByCategory(items []products.Product) []CategoryStock {
	byName := make(map[string]*CategoryStock)
	for _, p := range items {
		name := p.Category
		if name == "" {
			name = DefaultCategory
		}
		agg, ok := byName[name]
		if !ok {
			agg = &CategoryStock{Category: name}
			byName[name] = agg
		}
		agg.Current += p.Stock
		agg.Optimal += float64(p.MinStock) * optimalFactor
	}
	out := make([]CategoryStock, 0, len(byName))
	for _, agg := range byName {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Recommendations lists reorder suggestions in product order.
func Recommendations(items []products.Product) []ReorderRecommendation {
	out := make([]ReorderRecommendation, 0)
	for _, p := range items {
		r, ok := inventory.DeriveReorder(p.Stock, p.MinStock)
		if !ok {
			continue
		}
		out = append(out, ReorderRecommendation{
			ProductID:      p.ID,
			Product:        p.Name,
			CurrentStock:   p.Stock,
			ReorderPoint:   p.MinStock,
			SuggestedOrder: r.SuggestedOrder,
			Priority:       r.Priority,
		})
	}
	return out
}

// StockMovement builds the six month chart. restock is called once per
// product-month that has sales history.
func StockMovement(items []products.Product, restock func() int64) []MonthMovement {
	out := make([]MonthMovement, len(movementMonths))
	for i, m := range movementMonths {
		out[i].Month = m
	}
	for _, p := range items {
		for i := range out {
			month := &out[i]
			if i >= len(p.SalesHistory) {
				month.InStock += p.Stock
				continue
			}
			sold := p.SalesHistory[i].Sales
			month.Sold += sold
			if restock != nil {
				month.Restocked += restock()
			}
			month.InStock += max(0, p.Stock-sold+month.Restocked)
		}
	}
	return out
}

// CostSavings estimates savings across the catalogue.
func CostSavings(items []products.Product) int64 {
	levels := make([]inventory.StockLevel, len(items))
	for i, p := range items {
		levels[i] = p.Level()
	}
	return inventory.EstimateSavings(levels)
}

// ForecastAccuracy back-tests the trend fit over every product history.
func ForecastAccuracy(items []products.Product) float64 {
	histories := make([][]forecast.Point, 0, len(items))
	for _, p := range items {
		histories = append(histories, p.SalesHistory)
	}
	return forecast.Accuracy(histories)
}
