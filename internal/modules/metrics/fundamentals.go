package metrics

import (
	"math"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// DistressedLeverage is the sentinel debt-to-equity value assigned when
// equity is zero or negative. Distress is flagged, not raised.
const DistressedLeverage = 999.0

// DebtToEquity calculates total debt over total equity from the most
// recent balance sheet. Returns DistressedLeverage when equity is
// non-positive, nil when either input is missing.
func DebtToEquity(balance *domain.Statement) *float64 {
	if balance.Empty() {
		return nil
	}

	totalDebt := balance.Value(domain.KeysTotalDebt, 0)
	totalEquity := balance.Value(domain.KeysTotalEquity, 0)
	if totalDebt == nil || totalEquity == nil {
		return nil
	}

	if *totalEquity <= 0 {
		sentinel := DistressedLeverage
		return &sentinel
	}

	de := *totalDebt / *totalEquity
	return &de
}

// HasPositiveFCF3y reports whether free cash flow was positive in each of
// the three most recent reported periods. A missing row, a missing year or
// fewer than three periods all fail the check.
func HasPositiveFCF3y(cashflow *domain.Statement) bool {
	if cashflow.Empty() {
		return false
	}

	row := cashflow.Row(domain.KeysFreeCashFlow)
	if row == nil || len(row) < 3 {
		return false
	}

	for _, v := range row[:3] {
		if math.IsNaN(v) || v <= 0 {
			return false
		}
	}
	return true
}

// TTMFCF returns trailing-twelve-month free cash flow from the snapshot.
func TTMFCF(snap *domain.Snapshot) *float64 {
	return snap.Field("freeCashflow")
}

// FCFTrend extracts free cash flow for the last n fiscal years, oldest
// first. Missing years carry a nil value.
func FCFTrend(cashflow *domain.Statement, years int) []domain.FCFPoint {
	if cashflow.Empty() {
		return nil
	}

	row := cashflow.Row(domain.KeysFreeCashFlow)
	if row == nil {
		return nil
	}

	n := years
	if len(row) < n {
		n = len(row)
	}

	periods := cashflow.Periods()
	trend := make([]domain.FCFPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		p := domain.FCFPoint{Period: periods[i]}
		if !math.IsNaN(row[i]) {
			v := row[i]
			p.FCF = &v
		}
		trend = append(trend, p)
	}
	return trend
}

// DistanceFromHigh returns the signed percentage distance of the current
// price from the 52-week high (negative below the peak).
func DistanceFromHigh(snap *domain.Snapshot) *float64 {
	if snap == nil || snap.Price == nil || snap.FiftyTwoWeekHigh == nil || *snap.FiftyTwoWeekHigh == 0 {
		return nil
	}
	d := (*snap.Price - *snap.FiftyTwoWeekHigh) / *snap.FiftyTwoWeekHigh * 100
	return &d
}

// DistanceFromLow returns the signed percentage distance of the current
// price from the 52-week low (positive above the trough).
func DistanceFromLow(snap *domain.Snapshot) *float64 {
	if snap == nil || snap.Price == nil || snap.FiftyTwoWeekLow == nil || *snap.FiftyTwoWeekLow == 0 {
		return nil
	}
	d := (*snap.Price - *snap.FiftyTwoWeekLow) / *snap.FiftyTwoWeekLow * 100
	return &d
}

// NearLow reports whether the current price is within thresholdPct of the
// 52-week low. Missing data fails the test.
func NearLow(snap *domain.Snapshot, thresholdPct float64) bool {
	if snap == nil || snap.Price == nil || snap.FiftyTwoWeekLow == nil {
		return false
	}
	return *snap.Price <= *snap.FiftyTwoWeekLow*(1+thresholdPct/100)
}

// PEAnalysis holds current vs 3-year-normalized price-to-earnings figures
// for mean-reversion comparison.
type PEAnalysis struct {
	CurrentPE    *float64
	NormalizedPE *float64
	PremiumPct   *float64 // (current/normalized - 1) x 100
}

// NormalizedPE derives the current trailing P/E and a normalized P/E from
// three-year average earnings. Each field is independently optional.
func NormalizedPE(snap *domain.Snapshot, income *domain.Statement) PEAnalysis {
	var out PEAnalysis

	if pe := snap.Field("trailingPE"); pe != nil && *pe > 0 {
		out.CurrentPE = pe
	}

	shares := snap.Field("sharesOutstanding")
	if income.Empty() || snap == nil || snap.Price == nil || shares == nil || *shares <= 0 {
		return out
	}

	if avgEPS := averageEPS(income, *shares, 3); avgEPS != nil && *avgEPS > 0 {
		npe := *snap.Price / *avgEPS
		out.NormalizedPE = &npe
	}

	if out.CurrentPE != nil && out.NormalizedPE != nil {
		premium := (*out.CurrentPE / *out.NormalizedPE - 1) * 100
		out.PremiumPct = &premium
	}
	return out
}

// averageEPS averages up to n years of net income per current share.
// Needs at least two usable years.
func averageEPS(income *domain.Statement, shares float64, n int) *float64 {
	row := income.Row(domain.KeysNetIncome)
	if row == nil || shares <= 0 {
		return nil
	}

	var sum float64
	var count int
	limit := n
	if len(row) < limit {
		limit = len(row)
	}
	for _, v := range row[:limit] {
		if !math.IsNaN(v) && v != 0 {
			sum += v
			count++
		}
	}
	if count < 2 {
		return nil
	}

	avg := sum / float64(count) / shares
	return &avg
}
