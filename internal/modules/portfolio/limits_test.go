package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightSum(w []float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func TestApplyConcentrationCap_CompliantPassthrough(t *testing.T) {
	in := []float64{0.3, 0.3, 0.4}
	out := ApplyConcentrationCap(in, 0.5)
	assert.InDeltaSlice(t, in, out, 1e-12)
}

func TestApplyConcentrationCap_SingleClip(t *testing.T) {
	out := ApplyConcentrationCap([]float64{0.6, 0.3, 0.1}, 0.5)

	// Excess 0.1 spreads over the 0.4 of uncapped weight pro rata.
	assert.InDeltaSlice(t, []float64{0.5, 0.375, 0.125}, out, 1e-12)
	assert.InDelta(t, 1.0, weightSum(out), 1e-12)
}

func TestApplyConcentrationCap_CascadingRedistribution(t *testing.T) {
	// Redistribution pushes the second name over the cap, forcing further
	// rounds before settling.
	out := ApplyConcentrationCap([]float64{0.9, 0.09, 0.01}, 0.4)
	require.Len(t, out, 3)

	for _, w := range out {
		assert.LessOrEqual(t, w, 0.4+1e-9)
	}
	assert.InDelta(t, 1.0, weightSum(out), 1e-12)
	assert.InDelta(t, 0.4, out[0], 1e-3)
	assert.InDelta(t, 0.4, out[1], 1e-3)
	assert.InDelta(t, 0.2, out[2], 1e-3)
}

func TestApplyConcentrationCap_InfeasibleCapStillSumsToOne(t *testing.T) {
	// Two names cannot both fit under a 30% cap; the final renormalization
	// keeps the vector a valid allocation.
	out := ApplyConcentrationCap([]float64{0.6, 0.4}, 0.3)
	assert.InDelta(t, 1.0, weightSum(out), 1e-12)
}
