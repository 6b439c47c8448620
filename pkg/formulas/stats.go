// Package formulas provides shared numeric primitives for the screening,
// forecast, portfolio and backtest modules. Functions that can fail on
// missing or insufficient data return *float64, where nil means
// "undefined" - never zero.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the annualization factor for daily series.
const TradingDaysPerYear = 252

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev returns the sample standard deviation, or 0 for an empty slice.
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Correlation returns the Pearson correlation of two equal-length series,
// or 0 when either is empty or lengths differ.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// Covariance returns the sample covariance of two equal-length series.
func Covariance(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// DailyReturns converts a price series to simple daily returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]. A zero or missing
// predecessor yields a 0 return for that observation.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 && !math.IsNaN(prices[i]) && !math.IsNaN(prices[i-1]) {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return returns
}

// AnnualizedVolatility annualizes the standard deviation of daily returns.
func AnnualizedVolatility(dailyReturns []float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	return StdDev(dailyReturns) * math.Sqrt(TradingDaysPerYear)
}

// AnnualizedReturn converts a total return over n trading days to an
// annual compound rate.
func AnnualizedReturn(totalReturn float64, days int) float64 {
	years := float64(days) / TradingDaysPerYear
	if years < 0.01 {
		years = 0.01
	}
	return math.Pow(1+totalReturn, 1/years) - 1
}

// CumulativeSeries compounds daily returns into a cumulative growth series
// starting at (1 + r0).
func CumulativeSeries(dailyReturns []float64) []float64 {
	out := make([]float64, len(dailyReturns))
	acc := 1.0
	for i, r := range dailyReturns {
		acc *= 1 + r
		out[i] = acc
	}
	return out
}

// CAGR returns the compound annual growth rate between two positive
// endpoint values spanning the given number of yearly steps. Undefined
// when either endpoint is non-positive or the span is zero.
func CAGR(oldest, newest float64, years int) *float64 {
	if oldest <= 0 || newest <= 0 || years <= 0 {
		return nil
	}
	cagr := math.Pow(newest/oldest, 1/float64(years)) - 1
	return &cagr
}
