// Package metrics computes one company's derived fundamental and technical
// metrics from raw statements and a market snapshot. All functions are
// total over their input space: missing or degenerate data yields nil
// results, never panics.
package metrics

import (
	"math"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// ROICCap bounds ROIC to prevent near-zero-denominator blow-ups.
const ROICCap = 1.00

const defaultTaxRate = 0.25

// ROICForPeriod calculates return on invested capital for one fiscal
// period (0 = most recent) using the NOPAT method:
//
//	ROIC = NOPAT / InvestedCapital
//	NOPAT = OperatingIncome x (1 - effective tax rate)
//	InvestedCapital = TotalDebt + TotalEquity - Cash
//
// When invested capital is non-positive the operating fallback
// TotalAssets - CurrentLiabilities is used. Returns nil when required
// inputs are missing or both capital bases are degenerate. The result is
// capped at ROICCap.
func ROICForPeriod(income, balance *domain.Statement, period int) *float64 {
	if income.Empty() || balance.Empty() {
		return nil
	}
	if period >= income.NumPeriods() || period >= balance.NumPeriods() {
		return nil
	}

	operatingIncome := income.Value(domain.KeysOperatingIncome, period)
	if operatingIncome == nil {
		return nil
	}

	taxRate := defaultTaxRate
	pretax := income.Value(domain.KeysPretaxIncome, period)
	tax := income.Value(domain.KeysTaxProvision, period)
	if pretax != nil && tax != nil {
		taxRate = math.Abs(*tax) / math.Abs(*pretax)
		if taxRate > 1 {
			taxRate = 1
		}
	}

	nopat := *operatingIncome * (1 - taxRate)

	totalDebt := balance.Value(domain.KeysTotalDebt, period)
	totalEquity := balance.Value(domain.KeysTotalEquity, period)
	if totalDebt == nil || totalEquity == nil {
		return nil
	}

	cash := 0.0
	if c := balance.Value(domain.KeysCash, period); c != nil {
		cash = *c
	}

	investedCapital := *totalDebt + *totalEquity - cash
	if investedCapital <= 0 {
		// Operating fallback for capital-light or distressed balance
		// sheets.
		assets := balance.Value(domain.KeysTotalAssets, period)
		currentLiab := balance.Value(domain.KeysCurrentLiab, period)
		if assets == nil || currentLiab == nil {
			return nil
		}
		investedCapital = *assets - *currentLiab
		if investedCapital <= 0 {
			return nil
		}
	}

	roic := nopat / investedCapital
	if roic > ROICCap {
		roic = ROICCap
	}
	return &roic
}

// ROIC calculates return on invested capital for the most recent period.
func ROIC(income, balance *domain.Statement) *float64 {
	return ROICForPeriod(income, balance, 0)
}

// ROICTrend computes ROIC for the last n fiscal years, oldest first.
// Years with missing data carry a nil value rather than being dropped.
func ROICTrend(income, balance *domain.Statement, years int) []domain.ROICPoint {
	if income.Empty() || balance.Empty() {
		return nil
	}

	n := years
	if income.NumPeriods() < n {
		n = income.NumPeriods()
	}
	if balance.NumPeriods() < n {
		n = balance.NumPeriods()
	}

	trend := make([]domain.ROICPoint, 0, n)
	periods := income.Periods()
	for i := n - 1; i >= 0; i-- {
		trend = append(trend, domain.ROICPoint{
			Period: periods[i],
			ROIC:   ROICForPeriod(income, balance, i),
		})
	}
	return trend
}
