package forecast

import (
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/internal/modules/metrics"
)

// defaultReinvestmentRate applies when the payout ratio is unknown or out
// of range.
const defaultReinvestmentRate = 0.60

// ROICGrowth runs the sustainable-growth model for one scenario:
// sustainable growth = reinvestment rate x ROIC, projected through the same
// EPS-times-multiple machinery as the earnings-multiple model. Undefined
// when price, shares, a positive ROIC or a positive EPS cannot be derived.
func ROICGrowth(snap *domain.Snapshot, stmts domain.Statements, scenario domain.Scenario) *domain.ROICGrowthResult {
	if snap == nil || snap.Price == nil {
		return nil
	}
	price := *snap.Price

	shares := snap.Field("sharesOutstanding")
	if shares == nil || *shares <= 0 {
		return nil
	}

	roic := metrics.ROIC(stmts.Income, stmts.Balance)
	if roic == nil || *roic <= 0 {
		return nil
	}

	reinvestment := defaultReinvestmentRate
	if payout := snap.Field("payoutRatio"); payout != nil && *payout >= 0 && *payout <= 1 {
		reinvestment = 1 - *payout
	}
	sustainable := reinvestment * *roic

	var eps, targetPE float64
	if pe := snap.Field("trailingPE"); pe != nil && *pe > 0 {
		eps = price / *pe
		targetPE = *pe
	} else if ni := stmts.Income.Value(domain.KeysNetIncome, 0); ni != nil && *ni > 0 {
		eps = *ni / *shares
		targetPE = price / eps
	} else {
		return nil
	}
	if eps <= 0 || targetPE <= 0 {
		return nil
	}

	return &domain.ROICGrowthResult{
		ROIC:              *roic,
		ReinvestmentRate:  reinvestment,
		SustainableGrowth: sustainable,
		CurrentEPS:        eps,
		TargetPE:          targetPE,
		HorizonPrices:     projectPrices(eps, targetPE, sustainable, scenario),
	}
}
