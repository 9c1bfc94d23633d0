package inventory

import (
	"math"

	"github.com/shopspring/decimal"
)

// optimalFactor scales min_stock into the target stock level.
const optimalFactor = 1.5

var (
	overstockRate = decimal.RequireFromString("0.1")
	stockoutRate  = decimal.RequireFromString("0.2")
	optimalRatio  = decimal.RequireFromString("1.5")
)

// DeriveStatus classifies stock against the reorder threshold.
func DeriveStatus(stock, minStock int64) Status {
	half := float64(minStock) / 2
	switch {
	case float64(stock) <= half:
		return StatusCritical
	case stock <= minStock:
		return StatusLow
	default:
		return StatusInStock
	}
}

// DeriveReorder suggests a replenishment when stock is below minStock.
// ok is false when no reorder is needed.
func DeriveReorder(stock, minStock int64) (Reorder, bool) {
	if stock >= minStock {
		return Reorder{}, false
	}
	optimal := float64(minStock) * optimalFactor
	r := Reorder{
		SuggestedOrder: int64(math.Floor(optimal - float64(stock))),
		Priority:       PriorityLow,
	}
	switch {
	case float64(stock) < float64(minStock)*0.5:
		r.Priority = PriorityHigh
	case float64(stock) < float64(minStock)*0.75:
		r.Priority = PriorityMedium
	}
	return r, true
}

// EstimateSavings values the overstock and stockout exposure across products.
func EstimateSavings(levels []StockLevel) int64 {
	overstock := decimal.Zero
	stockout := decimal.Zero
	for _, l := range levels {
		stock := decimal.NewFromInt(l.Stock)
		minStock := decimal.NewFromInt(l.MinStock)
		price := decimal.NewFromFloat(l.Price)
		optimal := minStock.Mul(optimalRatio)

		if stock.GreaterThan(optimal) {
			overstock = overstock.Add(stock.Sub(optimal).Mul(price).Mul(overstockRate))
		}
		if stock.LessThan(minStock) {
			stockout = stockout.Add(minStock.Sub(stock).Mul(price).Mul(stockoutRate))
		}
	}
	return overstock.Add(stockout).Floor().IntPart()
}

// MoreSevere reports whether a is a worse stock position than b.
func MoreSevere(a, b Status) bool {
	return a.severity() > b.severity()
}
