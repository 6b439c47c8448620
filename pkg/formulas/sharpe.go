package formulas

import "math"

// SharpeRatio computes the annualized Sharpe ratio from periodic returns.
//
//	Sharpe = (mean return - periodic risk-free) / stddev, x sqrt(periods/yr)
//
// Returns nil for fewer than two observations or zero volatility.
func SharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) *float64 {
	if len(returns) < 2 {
		return nil
	}

	sd := StdDev(returns)
	if sd == 0 {
		return nil
	}

	periodicRF := riskFreeRate / float64(periodsPerYear)
	sharpe := (Mean(returns) - periodicRF) / sd * math.Sqrt(float64(periodsPerYear))
	return &sharpe
}

// SharpeFromAnnual computes a Sharpe-like ratio from already-annualized
// return and volatility figures. Returns nil when volatility is not
// positive.
func SharpeFromAnnual(annualReturn, riskFreeRate, annualVolatility float64) *float64 {
	if annualVolatility <= 0 {
		return nil
	}
	sharpe := (annualReturn - riskFreeRate) / annualVolatility
	return &sharpe
}
