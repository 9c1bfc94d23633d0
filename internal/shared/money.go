package shared

import "github.com/shopspring/decimal"

// Line is a priced quantity.
type Line struct {
	Quantity int64
	Price    float64
}

// LineTotal sums quantity times price over lines, rounded to cents.
func LineTotal(lines []Line) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total.Round(2).InexactFloat64()
}
