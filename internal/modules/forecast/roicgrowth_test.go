package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

func roicStatements(t *testing.T) domain.Statements {
	t.Helper()
	return domain.Statements{
		Income: stmt(t, []string{"2025"}, map[string][]float64{
			"Operating Income": {100},
			"Tax Provision":    {25},
			"Pretax Income":    {100},
		}),
		Balance: stmt(t, []string{"2025"}, map[string][]float64{
			"Total Debt":          {100},
			"Stockholders Equity": {400},
		}),
	}
}

func TestROICGrowth(t *testing.T) {
	snap := &domain.Snapshot{
		Price: pf(100),
		Fields: map[string]float64{
			"trailingPE":        20,
			"sharesOutstanding": 10,
			"payoutRatio":       0.4,
		},
	}

	res := ROICGrowth(snap, roicStatements(t), domain.ScenarioBase)
	require.NotNil(t, res)

	// NOPAT 75 over invested capital 500.
	assert.InDelta(t, 0.15, res.ROIC, 1e-9)
	assert.InDelta(t, 0.6, res.ReinvestmentRate, 1e-12)
	assert.InDelta(t, 0.09, res.SustainableGrowth, 1e-9)
	assert.InDelta(t, 5.0, res.CurrentEPS, 1e-12)
	assert.InDelta(t, 20.0, res.TargetPE, 1e-12)

	g1 := 0.09*0.8 + 0.025*0.2
	assert.InDelta(t, 5*(1+g1)*20, res.HorizonPrices[domain.Horizon1Y], 1e-9)
}

func TestROICGrowth_DefaultReinvestment(t *testing.T) {
	snap := &domain.Snapshot{
		Price: pf(100),
		Fields: map[string]float64{
			"trailingPE":        20,
			"sharesOutstanding": 10,
			"payoutRatio":       1.4, // buyback-distorted, out of range
		},
	}

	res := ROICGrowth(snap, roicStatements(t), domain.ScenarioBase)
	require.NotNil(t, res)
	assert.InDelta(t, defaultReinvestmentRate, res.ReinvestmentRate, 1e-12)
}

func TestROICGrowth_Undefined(t *testing.T) {
	snap := &domain.Snapshot{
		Price: pf(100),
		Fields: map[string]float64{
			"trailingPE":        20,
			"sharesOutstanding": 10,
		},
	}

	assert.Nil(t, ROICGrowth(snap, domain.Statements{}, domain.ScenarioBase),
		"no statements means no ROIC")
	assert.Nil(t, ROICGrowth(nil, roicStatements(t), domain.ScenarioBase))
	assert.Nil(t, ROICGrowth(&domain.Snapshot{Price: pf(100)}, roicStatements(t), domain.ScenarioBase),
		"no share count")
}
