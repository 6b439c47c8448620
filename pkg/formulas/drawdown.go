package formulas

// MaxDrawdown returns the maximum peak-to-trough loss of a value series as
// a positive fraction (0.25 = 25% below peak), or nil for fewer than two
// observations.
func MaxDrawdown(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}

	maxDD := 0.0
	peak := values[0]
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (peak - v) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return &maxDD
}

// MaxDrawdownFromReturns compounds daily returns and returns the maximum
// drawdown of the resulting cumulative series.
func MaxDrawdownFromReturns(dailyReturns []float64) *float64 {
	if len(dailyReturns) < 2 {
		return nil
	}
	return MaxDrawdown(CumulativeSeries(dailyReturns))
}
