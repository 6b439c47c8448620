package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEqualWeight(t *testing.T) {
	w := EqualWeight(4)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, w, 1e-12)
}

func TestInverseVolatility(t *testing.T) {
	// Volatilities 0.2 and 0.1: the calmer name carries twice the weight.
	cov := mat.NewSymDense(2, []float64{
		0.04, 0,
		0, 0.01,
	})

	w := InverseVolatility(cov)
	assert.InDelta(t, 1.0/3, w[0], 1e-12)
	assert.InDelta(t, 2.0/3, w[1], 1e-12)
}

func TestMaxDiversification_SymmetricAssets(t *testing.T) {
	// Interchangeable assets must end up equally weighted.
	cov := mat.NewSymDense(2, []float64{
		0.04, 0.01,
		0.01, 0.04,
	})

	w := MaxDiversification(cov)
	require.Len(t, w, 2)
	assert.InDelta(t, 0.5, w[0], 1e-6)
	assert.InDelta(t, 0.5, w[1], 1e-6)
}

func TestMaxDiversification_ValidAllocation(t *testing.T) {
	cov := mat.NewSymDense(3, []float64{
		0.09, 0.01, 0.00,
		0.01, 0.04, 0.01,
		0.00, 0.01, 0.01,
	})

	w := MaxDiversification(cov)
	require.Len(t, w, 3)

	assert.InDelta(t, 1.0, weightSum(w), 1e-9)
	for _, v := range w {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}
