package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharpeRatio(t *testing.T) {
	assert.Nil(t, SharpeRatio([]float64{0.01}, 0.045, 252), "one observation is not enough")
	assert.Nil(t, SharpeRatio([]float64{0.01, 0.01, 0.01}, 0.045, 252), "zero volatility is undefined")

	s := SharpeRatio([]float64{0.01, -0.005, 0.02, 0.0}, 0.0, 252)
	require.NotNil(t, s)
	assert.Greater(t, *s, 0.0, "positive mean return with zero risk-free gives positive Sharpe")
}

func TestSharpeFromAnnual(t *testing.T) {
	s := SharpeFromAnnual(0.12, 0.045, 0.25)
	require.NotNil(t, s)
	assert.InDelta(t, (0.12-0.045)/0.25, *s, 1e-12)

	assert.Nil(t, SharpeFromAnnual(0.12, 0.045, 0))
}
