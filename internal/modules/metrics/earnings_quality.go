package metrics

import (
	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// Earnings-quality scoring bands. Each sub-signal maps linearly onto
// 0-100 between its bounds.
const (
	accrualBest  = -0.10 // accrual ratio at or below this scores 100
	accrualWorst = 0.20  // at or above this scores 0

	cashConversionFull = 1.50 // FCF/NI at or above this scores 100

	revenueDivergenceBand = 10.0 // +-10pp maps onto the full score range
)

// EarningsQuality scores how well reported profits are backed by cash
// (0-100). Three sub-signals are blended; any sub-signal whose inputs are
// missing is excluded and the composite is renormalized over the remaining
// weights. The composite is nil only when no sub-signal is computable.
func EarningsQuality(stmts domain.Statements) domain.EarningsQuality {
	var eq domain.EarningsQuality

	eq.AccrualScore = accrualScore(stmts.Income, stmts.Balance, stmts.CashFlow)
	eq.CashConversionScore = cashConversionScore(stmts.Income, stmts.CashFlow)
	eq.RevenueQualityScore = revenueQualityScore(stmts.Income, stmts.Balance)

	type weighted struct {
		score  *float64
		weight float64
	}
	parts := []weighted{
		{eq.AccrualScore, config.EQAccrualWeight},
		{eq.CashConversionScore, config.EQCashConversionWeight},
		{eq.RevenueQualityScore, config.EQRevenueQualityWeight},
	}

	var sum, weightSum float64
	for _, p := range parts {
		if p.score == nil {
			continue
		}
		sum += *p.score * p.weight
		weightSum += p.weight
	}
	if weightSum > 0 {
		composite := sum / weightSum
		eq.Composite = &composite
	}
	return eq
}

// accrualScore rates the accrual ratio (NetIncome - OperatingCashFlow) /
// TotalAssets. Low accruals mean profits arrived as cash.
func accrualScore(income, balance, cashflow *domain.Statement) *float64 {
	netIncome := income.Value(domain.KeysNetIncome, 0)
	operatingCF := cashflow.Value(domain.KeysOperatingCF, 0)
	totalAssets := balance.Value(domain.KeysTotalAssets, 0)
	if netIncome == nil || operatingCF == nil || totalAssets == nil || *totalAssets <= 0 {
		return nil
	}

	ratio := (*netIncome - *operatingCF) / *totalAssets
	score := linearScore(ratio, accrualWorst, accrualBest)
	return &score
}

// cashConversionScore rates free cash flow relative to net income.
// Undefined when net income is non-positive: the ratio is meaningless for
// loss-makers.
func cashConversionScore(income, cashflow *domain.Statement) *float64 {
	netIncome := income.Value(domain.KeysNetIncome, 0)
	fcf := cashflow.Value(domain.KeysFreeCashFlow, 0)
	if netIncome == nil || fcf == nil || *netIncome <= 0 {
		return nil
	}

	ratio := *fcf / *netIncome
	score := linearScore(ratio, 0, cashConversionFull)
	return &score
}

// revenueQualityScore rates year-over-year revenue growth against
// receivables growth. Receivables outpacing revenue suggests sales booked
// before cash arrives. Needs two periods of both rows.
func revenueQualityScore(income, balance *domain.Statement) *float64 {
	revNow := income.Value(domain.KeysRevenue, 0)
	revPrev := income.Value(domain.KeysRevenue, 1)
	recvNow := balance.Value(domain.KeysReceivables, 0)
	recvPrev := balance.Value(domain.KeysReceivables, 1)
	if revNow == nil || revPrev == nil || recvNow == nil || recvPrev == nil {
		return nil
	}
	if *revPrev <= 0 || *recvPrev <= 0 {
		return nil
	}

	revGrowth := (*revNow - *revPrev) / *revPrev * 100
	recvGrowth := (*recvNow - *recvPrev) / *recvPrev * 100
	divergence := revGrowth - recvGrowth

	score := linearScore(divergence, -revenueDivergenceBand, revenueDivergenceBand)
	return &score
}

// linearScore maps v onto 0-100 linearly between worst and best, clamping
// outside the band. worst may be greater than best for inverted signals.
func linearScore(v, worst, best float64) float64 {
	span := best - worst
	if span == 0 {
		return 0
	}
	score := (v - worst) / span * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
