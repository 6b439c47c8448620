package forecast

import (
	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/pkg/formulas"
)

// minRiskHistory is the minimum number of daily closes for volatility,
// drawdown and Sharpe figures.
const minRiskHistory = 20

// Risk derives per-company risk metrics from up to one year of daily
// closes. Beta is always populated (defaulted when unknown); the remaining
// figures stay nil on insufficient history. The Sharpe ratio uses the
// projected annual return when one exists, else the trailing realized
// return.
func Risk(snap *domain.Snapshot, closes []float64, riskFreeRate float64, projectedAnnualReturn *float64) domain.RiskMetrics {
	risk := domain.RiskMetrics{Beta: config.DefaultBeta}
	if b := snap.Field("beta"); b != nil && *b > 0 {
		risk.Beta = *b
	}

	if len(closes) < minRiskHistory {
		return risk
	}

	returns := formulas.DailyReturns(closes)
	vol := formulas.AnnualizedVolatility(returns)
	risk.AnnualVolatility = &vol

	if dd := formulas.MaxDrawdownFromReturns(returns); dd != nil {
		pct := *dd * 100
		risk.MaxDrawdownPct = &pct
	}

	if vol <= 0 {
		return risk
	}

	annualReturn := 0.0
	if projectedAnnualReturn != nil {
		annualReturn = *projectedAnnualReturn
	} else {
		total := closes[len(closes)-1]/closes[0] - 1
		annualReturn = formulas.AnnualizedReturn(total, len(closes))
	}
	risk.SharpeRatio = formulas.SharpeFromAnnual(annualReturn, riskFreeRate, vol)

	return risk
}
