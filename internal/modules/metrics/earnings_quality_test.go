package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

func TestEarningsQuality_AllSignals(t *testing.T) {
	stmts := domain.Statements{
		Income: mustStatement(t, []string{"2025", "2024"}, map[string][]float64{
			"Net Income":    {100, 90},
			"Total Revenue": {110, 100},
		}),
		Balance: mustStatement(t, []string{"2025", "2024"}, map[string][]float64{
			"Total Assets":        {1000, 950},
			"Accounts Receivable": {105, 100},
		}),
		CashFlow: mustStatement(t, []string{"2025", "2024"}, map[string][]float64{
			"Operating Cash Flow": {110, 100},
			"Free Cash Flow":      {90, 80},
		}),
	}

	eq := EarningsQuality(stmts)

	// Accrual ratio (100-110)/1000 = -0.01 inside the -0.10..0.20 band.
	require.NotNil(t, eq.AccrualScore)
	assert.InDelta(t, 70.0, *eq.AccrualScore, 1e-9)

	// FCF/NI = 0.9 against a full-credit bar of 1.5.
	require.NotNil(t, eq.CashConversionScore)
	assert.InDelta(t, 60.0, *eq.CashConversionScore, 1e-9)

	// Revenue +10% vs receivables +5%: divergence +5pp in a +-10pp band.
	require.NotNil(t, eq.RevenueQualityScore)
	assert.InDelta(t, 75.0, *eq.RevenueQualityScore, 1e-9)

	require.NotNil(t, eq.Composite)
	assert.InDelta(t, 0.40*70+0.35*60+0.25*75, *eq.Composite, 1e-9)
}

func TestEarningsQuality_RenormalizesMissingSignal(t *testing.T) {
	stmts := domain.Statements{
		Income: mustStatement(t, []string{"2025"}, map[string][]float64{
			"Net Income": {100},
		}),
		Balance: mustStatement(t, []string{"2025"}, map[string][]float64{
			"Total Assets": {1000},
		}),
		CashFlow: mustStatement(t, []string{"2025"}, map[string][]float64{
			"Operating Cash Flow": {250},
			"Free Cash Flow":      {75},
		}),
	}

	eq := EarningsQuality(stmts)

	require.NotNil(t, eq.AccrualScore)
	assert.InDelta(t, 100.0, *eq.AccrualScore, 1e-9)
	require.NotNil(t, eq.CashConversionScore)
	assert.InDelta(t, 50.0, *eq.CashConversionScore, 1e-9)
	assert.Nil(t, eq.RevenueQualityScore)

	// Weights renormalize over the two available signals; a missing
	// signal never drags the composite toward zero.
	require.NotNil(t, eq.Composite)
	assert.InDelta(t, (0.40*100+0.35*50)/0.75, *eq.Composite, 1e-9)
	assert.Greater(t, *eq.Composite, 57.5, "naive zero-fill would give 57.5")
}

func TestEarningsQuality_LossMakerConversionUndefined(t *testing.T) {
	stmts := domain.Statements{
		Income: mustStatement(t, []string{"2025"}, map[string][]float64{
			"Net Income": {-50},
		}),
		CashFlow: mustStatement(t, []string{"2025"}, map[string][]float64{
			"Free Cash Flow": {10},
		}),
	}

	eq := EarningsQuality(stmts)
	assert.Nil(t, eq.CashConversionScore, "FCF/NI is meaningless at a loss")
}

func TestEarningsQuality_NoSignals(t *testing.T) {
	eq := EarningsQuality(domain.Statements{})
	assert.Nil(t, eq.AccrualScore)
	assert.Nil(t, eq.CashConversionScore)
	assert.Nil(t, eq.RevenueQualityScore)
	assert.Nil(t, eq.Composite)
}
