package forecast

import (
	"math"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// convergenceWeights controls how far each horizon price has moved from the
// current price toward DCF intrinsic value. Prices converge over time
// rather than re-running the DCF per horizon.
var convergenceWeights = map[domain.Horizon]float64{
	domain.Horizon6M: 0.10,
	domain.Horizon1Y: 0.20,
	domain.Horizon2Y: 0.40,
	domain.Horizon5Y: 1.00,
}

// DCF runs the discounted-cash-flow model for one scenario. It projects
// free cash flow forward five years at the scenario growth rate, adds a
// Gordon-growth terminal value, discounts to present value, subtracts net
// debt and divides by shares outstanding. Undefined when price, shares or
// a positive FCF base are missing, or when the discount rate does not
// exceed the terminal growth rate.
func DCF(snap *domain.Snapshot, stmts domain.Statements, riskFreeRate float64, scenario domain.Scenario) *domain.DCFResult {
	if snap == nil || snap.Price == nil {
		return nil
	}
	price := *snap.Price

	shares := snap.Field("sharesOutstanding")
	if shares == nil || *shares <= 0 {
		return nil
	}

	base := fcfBase(snap, stmts.CashFlow)
	if base == nil {
		return nil
	}

	hist := growthOrDefault(FCFCAGR(stmts.CashFlow), snap)

	wacc := CostOfCapital(snap, stmts.Balance, stmts.Income, riskFreeRate)
	if wacc <= config.TerminalGrowthRate {
		return nil
	}

	projected := make([]float64, 0, config.ProjectionYears)
	fcf := *base
	for year := 1; year <= config.ProjectionYears; year++ {
		fcf *= 1 + scenarioGrowth(hist, scenario, year)
		projected = append(projected, fcf)
	}

	terminal := projected[len(projected)-1] * (1 + config.TerminalGrowthRate) / (wacc - config.TerminalGrowthRate)
	if terminal < 0 {
		terminal = 0
	}

	var presentValue float64
	for i, f := range projected {
		presentValue += f / math.Pow(1+wacc, float64(i+1))
	}
	presentValue += terminal / math.Pow(1+wacc, config.ProjectionYears)

	// Negative equity value after net debt means the debt adjustment is
	// unusable; fall back to enterprise value.
	equityValue := presentValue - netDebt(stmts.Balance)
	if equityValue <= 0 {
		equityValue = presentValue
	}

	intrinsic := equityValue / *shares
	if intrinsic <= 0 {
		return nil
	}

	prices := make(domain.HorizonPrices, len(domain.Horizons))
	for _, h := range domain.Horizons {
		prices[h] = price + (intrinsic-price)*convergenceWeights[h]
	}

	return &domain.DCFResult{
		IntrinsicValuePerShare: intrinsic,
		MarginOfSafetyPct:      (intrinsic - price) / intrinsic * 100,
		WACC:                   wacc,
		FCFCAGR:                hist,
		ProjectedFCFs:          projected,
		TerminalValue:          terminal,
		HorizonPrices:          prices,
	}
}

// fcfBase picks the trailing free-cash-flow base: the snapshot's TTM figure
// when positive, else the most recent cash-flow-statement value when
// positive, else nothing.
func fcfBase(snap *domain.Snapshot, cashflow *domain.Statement) *float64 {
	if ttm := snap.Field("freeCashflow"); ttm != nil && *ttm > 0 {
		return ttm
	}
	if v := cashflow.Value(domain.KeysFreeCashFlow, 0); v != nil && *v > 0 {
		return v
	}
	return nil
}

// netDebt returns total debt minus cash from the most recent balance sheet,
// zero when debt is unknown.
func netDebt(balance *domain.Statement) float64 {
	totalDebt := balance.Value(domain.KeysTotalDebt, 0)
	if totalDebt == nil {
		return 0
	}
	cash := 0.0
	if c := balance.Value(domain.KeysCash, 0); c != nil {
		cash = *c
	}
	return *totalDebt - cash
}
