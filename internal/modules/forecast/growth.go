// Package forecast projects per-company price targets from three valuation
// models evaluated under bull, base and bear growth scenarios.
package forecast

import (
	"math"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/pkg/formulas"
)

// defaultGrowthRate is the conservative fallback when no historical growth
// rate can be derived.
const defaultGrowthRate = 0.05

// cagrYears is the lookback window for historical growth rates.
const cagrYears = 3

// scenarioGrowth adjusts a historical growth rate for one projection year.
// Bull holds the historical rate flat; base decays it linearly toward the
// terminal rate over the projection window; bear starts from half the
// historical rate and decays the same way. Every path is capped at the
// maximum projection growth.
func scenarioGrowth(historical float64, scenario domain.Scenario, year int) float64 {
	if scenario == domain.ScenarioBull {
		return math.Min(historical, config.MaxProjectionGrowth)
	}

	start := historical
	if scenario == domain.ScenarioBear {
		start = historical * 0.5
	}

	decay := float64(year) / float64(config.ProjectionYears)
	g := start*(1-decay) + config.TerminalGrowthRate*decay
	return math.Min(g, config.MaxProjectionGrowth)
}

// FCFCAGR derives the free-cash-flow compound annual growth rate over up to
// three fiscal years. Undefined when fewer than two usable periods exist or
// either endpoint is non-positive.
func FCFCAGR(cashflow *domain.Statement) *float64 {
	row := cashflow.Row(domain.KeysFreeCashFlow)
	return rowCAGR(row)
}

// EPSCAGR derives the earnings-per-share compound annual growth rate from
// net income over up to three fiscal years, using the current share count
// for every period.
func EPSCAGR(income *domain.Statement, shares *float64) *float64 {
	if shares == nil || *shares <= 0 {
		return nil
	}

	row := income.Row(domain.KeysNetIncome)
	if row == nil {
		return nil
	}
	perShare := make([]float64, len(row))
	for i, v := range row {
		perShare[i] = v / *shares
	}
	return rowCAGR(perShare)
}

// rowCAGR computes the CAGR between the newest and oldest of up to three
// most-recent-first values.
func rowCAGR(row []float64) *float64 {
	if row == nil {
		return nil
	}

	points := cagrYears
	if len(row) < points {
		points = len(row)
	}
	if points < 2 {
		return nil
	}

	newest := row[0]
	oldest := row[points-1]
	if math.IsNaN(newest) || math.IsNaN(oldest) {
		return nil
	}
	return formulas.CAGR(oldest, newest, points-1)
}

// growthOrDefault resolves a historical growth rate, falling back to the
// provider's earnings-growth estimate and finally to a conservative
// default.
func growthOrDefault(cagr *float64, snap *domain.Snapshot) float64 {
	if cagr != nil {
		return *cagr
	}
	if eg := snap.Field("earningsGrowth"); eg != nil {
		return *eg
	}
	return defaultGrowthRate
}
