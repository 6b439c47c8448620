package forecast

import (
	"math"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/internal/modules/metrics"
)

// EarningsMultiple runs the P/E-multiple model for one scenario: derive
// current EPS, project it forward at a scenario-adjusted growth rate, and
// price the result at a target multiple. The target multiple prefers a
// 3-year normalized P/E, then the forward P/E, then the trailing P/E.
// Undefined when price, shares, a positive EPS or a positive multiple
// cannot be derived.
func EarningsMultiple(snap *domain.Snapshot, income *domain.Statement, scenario domain.Scenario) *domain.MultipleResult {
	if snap == nil || snap.Price == nil {
		return nil
	}
	price := *snap.Price

	shares := snap.Field("sharesOutstanding")
	if shares == nil || *shares <= 0 {
		return nil
	}

	eps := currentEPS(snap, income, *shares)
	if eps == nil {
		return nil
	}

	growth := growthOrDefault(EPSCAGR(income, shares), snap)

	targetPE := targetMultiple(snap, income, price)
	if targetPE == nil {
		return nil
	}

	return &domain.MultipleResult{
		CurrentEPS:    *eps,
		EPSCAGR:       growth,
		TargetPE:      *targetPE,
		HorizonPrices: projectPrices(*eps, *targetPE, growth, scenario),
	}
}

// currentEPS derives earnings per share from the trailing P/E when present,
// else from the most recent positive net income.
func currentEPS(snap *domain.Snapshot, income *domain.Statement, shares float64) *float64 {
	if pe := snap.Field("trailingPE"); pe != nil && *pe > 0 {
		eps := *snap.Price / *pe
		return &eps
	}
	if ni := income.Value(domain.KeysNetIncome, 0); ni != nil && *ni > 0 {
		eps := *ni / shares
		return &eps
	}
	return nil
}

// targetMultiple resolves the exit multiple: 3-year normalized P/E, else
// forward P/E, else trailing P/E. Nil when none is positive.
func targetMultiple(snap *domain.Snapshot, income *domain.Statement, price float64) *float64 {
	if npe := metrics.NormalizedPE(snap, income).NormalizedPE; npe != nil && *npe > 0 {
		return npe
	}
	if fpe := snap.Field("forwardPE"); fpe != nil && *fpe > 0 {
		return fpe
	}
	if tpe := snap.Field("trailingPE"); tpe != nil && *tpe > 0 {
		return tpe
	}
	return nil
}

// projectPrices compounds EPS forward over each horizon (fractional years
// compound fractionally) and applies the target multiple. The scenario
// decay is evaluated at the whole-year mark of each horizon, minimum one.
func projectPrices(eps, targetPE, growth float64, scenario domain.Scenario) domain.HorizonPrices {
	prices := make(domain.HorizonPrices, len(domain.Horizons))
	for _, h := range domain.Horizons {
		years := domain.HorizonYears[h]
		year := int(years)
		if year < 1 {
			year = 1
		}
		g := scenarioGrowth(growth, scenario, year)
		prices[h] = eps * math.Pow(1+g, years) * targetPE
	}
	return prices
}
