package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func history(values ...int64) []Point {
	out := make([]Point, len(values))
	for i, v := range values {
		out[i] = Point{Period: "Month " + string(rune('1'+i)), Sales: v}
	}
	return out
}

func TestFitLinearTrendFlat(t *testing.T) {
	line, err := FitLinearTrend([]float64{100, 100})
	require.NoError(t, err)
	assert.InDelta(t, 0, line.Slope, 1e-9)
	assert.InDelta(t, 100, line.Intercept, 1e-9)
}

func TestFitLinearTrendRecoversLine(t *testing.T) {
	line, err := FitLinearTrend([]float64{3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2, line.Slope, 1e-9)
	assert.InDelta(t, 3, line.Intercept, 1e-9)

	// 1, 2, 2, 4: slope 0.9, intercept 0.9
	line, err = FitLinearTrend([]float64{1, 2, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, line.Slope, 1e-9)
	assert.InDelta(t, 0.9, line.Intercept, 1e-9)
}

func TestFitLinearTrendNeedsTwoPoints(t *testing.T) {
	_, err := FitLinearTrend([]float64{42})
	require.True(t, errors.Is(err, ErrInsufficientData))
	_, err = FitLinearTrend(nil)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestForecastLinearSeries(t *testing.T) {
	points, err := Forecast(history(50, 60, 70, 80, 90, 100), 2)
	require.NoError(t, err)
	require.Len(t, points, 8)

	for i := 0; i < 6; i++ {
		require.NotNil(t, points[i].Actual)
		assert.Nil(t, points[i].Predicted)
	}
	assert.Equal(t, "Month 7", points[6].Period)
	assert.Equal(t, "Month 8", points[7].Period)
	assert.Nil(t, points[6].Actual)
	assert.InDelta(t, 110, *points[6].Predicted, 1e-9)
	assert.InDelta(t, 120, *points[7].Predicted, 1e-9)
}

func TestForecastRejectsShortHistory(t *testing.T) {
	_, err := Forecast(history(10), 3)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, TrendIncreasing, ClassifyTrend(6))
	assert.Equal(t, TrendStable, ClassifyTrend(0))
	assert.Equal(t, TrendStable, ClassifyTrend(5))
	assert.Equal(t, TrendStable, ClassifyTrend(-5))
	assert.Equal(t, TrendDecreasing, ClassifyTrend(-6))
}

func TestClassifyDemand(t *testing.T) {
	assert.Equal(t, DemandUnknown, ClassifyDemand(nil))
	assert.Equal(t, DemandHigh, ClassifyDemand(history(100, 100, 100, 200)))
	assert.Equal(t, DemandLow, ClassifyDemand(history(100, 100, 100, 10)))
	assert.Equal(t, DemandMedium, ClassifyDemand(history(100, 100, 100, 100)))
}

func TestRecommend(t *testing.T) {
	assert.Equal(t, "Consider increasing stock by 15-25%", Recommend(TrendIncreasing))
	assert.Equal(t, "Consider reducing orders by 20-40%", Recommend(TrendDecreasing))
	assert.Equal(t, "Maintain current stock levels", Recommend(TrendStable))
}

func TestAccuracy(t *testing.T) {
	// perfectly linear series predicts the holdout exactly
	assert.Equal(t, 100.0, Accuracy([][]Point{history(10, 20, 30, 40, 50, 60)}))

	// exactly three periods and shorter series contribute nothing
	assert.Equal(t, 0.0, Accuracy([][]Point{history(10, 20, 30), history(5)}))

	// flat training at 100 against actuals 100, 50, 200:
	// 100, clamp(0) and 50 -> mean 50
	assert.Equal(t, 50.0, Accuracy([][]Point{history(100, 100, 100, 50, 200)}))

	// zero actuals are skipped
	assert.Equal(t, 100.0, Accuracy([][]Point{history(100, 100, 100, 0, 100)}))

	// a single training point projects flat: 100 vs 80 -> 75, 100 vs 100 -> 100, 100 vs 125 -> 80
	assert.Equal(t, 85.0, Accuracy([][]Point{history(100, 80, 100, 125)}))
}

func TestAccuracyRoundsToTwoDecimals(t *testing.T) {
	// training 100,100 -> 100; actuals 300 (33.33..), 100 (100), 100 (100)
	got := Accuracy([][]Point{history(100, 100, 300, 100, 100)})
	assert.Equal(t, 77.78, got)
}
