package portfolio

import (
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/pkg/formulas"
)

// Metrics annualizes the weighted daily-return series into portfolio-level
// figures.
func Metrics(weights []float64, m *ReturnsMatrix, riskFreeRate float64) domain.PortfolioMetrics {
	daily := m.PortfolioSeries(weights)

	out := domain.PortfolioMetrics{
		ExpectedReturn: formulas.Mean(daily) * formulas.TradingDaysPerYear,
		Volatility:     formulas.AnnualizedVolatility(daily),
	}

	if out.Volatility > 0 {
		out.SharpeRatio = (out.ExpectedReturn - riskFreeRate) / out.Volatility
	}
	if dd := formulas.MaxDrawdownFromReturns(daily); dd != nil {
		out.MaxDrawdown = *dd
	}

	return out
}
