package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSISweetSpotScore(t *testing.T) {
	tests := []struct {
		rsi  float64
		want float64
	}{
		{10, 20},
		{20, 20},
		{30, 60},
		{40, 100},
		{55, 100},
		{67.5, 50},
		{80, 0},
		{95, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, rsiSweetSpotScore(tt.rsi), 1e-9, "rsi %.1f", tt.rsi)
	}
}

func TestMomentumScore_RenormalizesMissingSignals(t *testing.T) {
	// 45 closes: enough for RSI and MACD, short of the 50-day SMA.
	closes := make([]float64, 45)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	m := MomentumScore(closes, nil)

	require.NotNil(t, m.RSI)
	assert.InDelta(t, 100.0, *m.RSI, 1e-9, "monotone gains saturate RSI")
	require.NotNil(t, m.RSIScore)
	assert.Equal(t, 0.0, *m.RSIScore, "overbought scores zero")

	require.NotNil(t, m.MACDScore)
	assert.Greater(t, *m.MACDScore, 50.0, "steady uptrend has a positive histogram")

	assert.Nil(t, m.SMAScore, "45 closes cannot fill a 50-day window")

	// RSI and MACD carry equal weight, so with SMA dropped the composite
	// is exactly half the MACD score.
	require.NotNil(t, m.Composite)
	assert.InDelta(t, *m.MACDScore/2, *m.Composite, 1e-9)
}

func TestMomentumScore_InsufficientHistory(t *testing.T) {
	closes := []float64{100, 101, 102, 101, 103, 104, 105, 104, 106, 107}

	m := MomentumScore(closes, nil)
	assert.Nil(t, m.RSI)
	assert.Nil(t, m.RSIScore)
	assert.Nil(t, m.MACDScore)
	assert.Nil(t, m.SMAScore)
	assert.Nil(t, m.Composite)
}

func TestMomentumScore_ExplicitPrice(t *testing.T) {
	// 220 flat closes give SMA50 == SMA200 == 100; a price above both
	// earns the two level conditions but not the crossover.
	closes := make([]float64, 220)
	for i := range closes {
		closes[i] = 100
	}

	m := MomentumScore(closes, f(110))
	require.NotNil(t, m.SMAScore)
	assert.InDelta(t, 60.0, *m.SMAScore, 1e-9)
}
