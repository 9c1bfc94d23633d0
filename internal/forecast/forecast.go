// Package forecast fits straight lines to short sales series and derives
// trend, demand and accuracy figures from them.
package forecast

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData indicates the series is too short for the requested computation.
var ErrInsufficientData = errors.New("forecast: insufficient data")

// Point is one period of sales history.
type Point struct {
	Period string `json:"period"`
	Sales  int64  `json:"sales"`
}

// Line is a fitted linear trend over zero-based indices.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at index x.
func (l Line) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// FitLinearTrend computes the ordinary least squares line through values
// placed at indices 0..n-1.
func FitLinearTrend(values []float64) (Line, error) {
	if len(values) < 2 {
		return Line{}, ErrInsufficientData
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	intercept, slope := stat.LinearRegression(xs, values, nil, false)
	return Line{Slope: slope, Intercept: intercept}, nil
}

// Values extracts the sales figures of a history.
func Values(history []Point) []float64 {
	out := make([]float64, len(history))
	for i, p := range history {
		out[i] = float64(p.Sales)
	}
	return out
}

// ChartPoint pairs an observed value with a predicted one. Exactly one is set.
type ChartPoint struct {
	Period    string   `json:"period"`
	Actual    *float64 `json:"actual"`
	Predicted *float64 `json:"predicted"`
}

// Forecast returns the history followed by periods predicted points labelled
// "Month N", numbering on from the history length.
func Forecast(history []Point, periods int) ([]ChartPoint, error) {
	if periods < 0 {
		return nil, fmt.Errorf("forecast: negative periods %d", periods)
	}
	line, err := FitLinearTrend(Values(history))
	if err != nil {
		return nil, err
	}
	n := len(history)
	out := make([]ChartPoint, 0, n+periods)
	for _, p := range history {
		actual := float64(p.Sales)
		out = append(out, ChartPoint{Period: p.Period, Actual: &actual})
	}
	for i := 0; i < periods; i++ {
		predicted := line.At(float64(n + i))
		out = append(out, ChartPoint{
			Period:    fmt.Sprintf("Month %d", n+i+1),
			Predicted: &predicted,
		})
	}
	return out, nil
}

// Trend is a qualitative slope label.
type Trend string

const (
	TrendIncreasing Trend = "Increasing"
	TrendDecreasing Trend = "Decreasing"
	TrendStable     Trend = "Stable"
)

// trendThreshold is an absolute slope; it does not scale with sales volume.
const trendThreshold = 5

// ClassifyTrend labels a slope.
func ClassifyTrend(slope float64) Trend {
	switch {
	case slope > trendThreshold:
		return TrendIncreasing
	case slope < -trendThreshold:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// Demand compares the latest period with the series mean.
type Demand string

const (
	DemandHigh    Demand = "High"
	DemandMedium  Demand = "Medium"
	DemandLow     Demand = "Low"
	DemandUnknown Demand = "Unknown"
)

// ClassifyDemand labels the most recent sales against the average.
func ClassifyDemand(history []Point) Demand {
	if len(history) == 0 {
		return DemandUnknown
	}
	var sum float64
	for _, p := range history {
		sum += float64(p.Sales)
	}
	mean := sum / float64(len(history))
	latest := float64(history[len(history)-1].Sales)
	switch {
	case latest > mean*1.2:
		return DemandHigh
	case latest < mean*0.8:
		return DemandLow
	default:
		return DemandMedium
	}
}

// Recommend maps a trend to stocking advice.
func Recommend(t Trend) string {
	switch t {
	case TrendIncreasing:
		return "Consider increasing stock by 15-25%"
	case TrendDecreasing:
		return "Consider reducing orders by 20-40%"
	default:
		return "Maintain current stock levels"
	}
}

// holdout is the number of trailing periods scored by Accuracy.
const holdout = 3

// Accuracy backtests each history: it fits on everything but the last three
// periods, predicts those three and scores each non-zero actual as
// clamp(100 - |p-a|/a*100, 0, 100). The mean over all scored periods is
// rounded to two decimals; zero when nothing qualifies.
func Accuracy(histories [][]Point) float64 {
	var total float64
	var count int
	for _, h := range histories {
		if len(h) <= holdout {
			continue
		}
		train := h[:len(h)-holdout]
		line, err := FitLinearTrend(Values(train))
		if err != nil {
			// a single training point projects flat
			line = Line{Intercept: float64(train[0].Sales)}
		}
		for i, p := range h[len(h)-holdout:] {
			if p.Sales <= 0 {
				continue
			}
			actual := float64(p.Sales)
			predicted := line.At(float64(len(train) + i))
			acc := 100 - math.Abs(predicted-actual)/actual*100
			total += math.Max(0, math.Min(acc, 100))
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(total/float64(count)*100) / 100
}
