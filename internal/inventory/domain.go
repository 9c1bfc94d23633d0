package inventory

// Status describes a product's stock position relative to its reorder threshold.
type Status string

const (
	// StatusCritical means stock sits at or below half the threshold.
	StatusCritical Status = "Critical"
	// StatusLow means stock sits above half the threshold but not above it.
	StatusLow Status = "Low Stock"
	// StatusInStock means stock exceeds the threshold.
	StatusInStock Status = "In Stock"
)

// severity orders statuses from healthy (0) to critical (2).
func (s Status) severity() int {
	switch s {
	case StatusCritical:
		return 2
	case StatusLow:
		return 1
	default:
		return 0
	}
}

// Priority ranks reorder urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Reorder is a suggested replenishment for an under-stocked product.
type Reorder struct {
	SuggestedOrder int64
	Priority       Priority
}

// StockLevel carries the product figures the valuation rules read.
type StockLevel struct {
	Stock    int64
	MinStock int64
	Price    float64
}
