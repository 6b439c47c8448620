package forecast

import (
	"math"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// CostOfCapital estimates the discount rate for valuation. Cost of equity
// comes from CAPM (risk-free rate + beta x equity risk premium, beta
// defaulted when unknown or non-positive). When market cap, total debt,
// interest and tax data are available it blends in an approximated
// after-tax cost of debt; otherwise it degrades to cost of equity alone.
func CostOfCapital(snap *domain.Snapshot, balance, income *domain.Statement, riskFreeRate float64) float64 {
	beta := config.DefaultBeta
	if b := snap.Field("beta"); b != nil && *b > 0 {
		beta = *b
	}
	costOfEquity := riskFreeRate + beta*config.EquityRiskPremium

	if snap == nil || snap.MarketCap == nil || balance.Empty() {
		return costOfEquity
	}
	totalDebt := balance.Value(domain.KeysTotalDebt, 0)
	if totalDebt == nil || *totalDebt <= 0 {
		return costOfEquity
	}

	costOfDebt := config.DefaultCostOfDebt
	if interest := income.Value(domain.KeysInterestExpense, 0); interest != nil {
		costOfDebt = math.Abs(*interest) / *totalDebt
	}

	taxRate := config.DefaultTaxRate
	tax := income.Value(domain.KeysTaxProvision, 0)
	pretax := income.Value(domain.KeysPretaxIncome, 0)
	if tax != nil && pretax != nil && *pretax > 0 {
		taxRate = math.Abs(*tax) / *pretax
	}

	equityValue := *snap.MarketCap
	totalValue := equityValue + *totalDebt
	if totalValue <= 0 {
		return costOfEquity
	}

	return (equityValue/totalValue)*costOfEquity +
		(*totalDebt/totalValue)*costOfDebt*(1-taxRate)
}
