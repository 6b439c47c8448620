package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-12)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	// Sample stddev of {2, 4, 4, 4, 5, 5, 7, 9} is sqrt(32/7).
	assert.InDelta(t, math.Sqrt(32.0/7.0), StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestDailyReturns(t *testing.T) {
	returns := DailyReturns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-12)
	assert.InDelta(t, -0.10, returns[1], 1e-12)

	assert.Empty(t, DailyReturns([]float64{100}))
}

func TestDailyReturns_ZeroPredecessor(t *testing.T) {
	returns := DailyReturns([]float64{0, 50, 100})
	require.Len(t, returns, 2)
	assert.Equal(t, 0.0, returns[0])
	assert.InDelta(t, 1.0, returns[1], 1e-12)
}

func TestAnnualizedReturn(t *testing.T) {
	// A full trading year returns its total return unchanged.
	assert.InDelta(t, 0.10, AnnualizedReturn(0.10, 252), 1e-9)
	// Half a year at +10% compounds to ~21% annualized.
	assert.InDelta(t, math.Pow(1.10, 2)-1, AnnualizedReturn(0.10, 126), 1e-9)
}

func TestCumulativeSeries(t *testing.T) {
	series := CumulativeSeries([]float64{0.10, -0.10})
	require.Len(t, series, 2)
	assert.InDelta(t, 1.10, series[0], 1e-12)
	assert.InDelta(t, 0.99, series[1], 1e-12)
}

func TestCAGR(t *testing.T) {
	cagr := CAGR(100, 121, 2)
	require.NotNil(t, cagr)
	assert.InDelta(t, 0.10, *cagr, 1e-9)

	assert.Nil(t, CAGR(-100, 121, 2), "negative base is undefined")
	assert.Nil(t, CAGR(100, 0, 2), "non-positive endpoint is undefined")
	assert.Nil(t, CAGR(100, 121, 0), "zero span is undefined")
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.0, Correlation(x, x), 1e-12)
	assert.Equal(t, 0.0, Correlation(x, []float64{1, 2}), "length mismatch yields zero")
}

func TestAnnualizedVolatility(t *testing.T) {
	returns := []float64{0.01, -0.01, 0.02, -0.02}
	expected := StdDev(returns) * math.Sqrt(252)
	assert.InDelta(t, expected, AnnualizedVolatility(returns), 1e-12)
	assert.Equal(t, 0.0, AnnualizedVolatility(nil))
}
