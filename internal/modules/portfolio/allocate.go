package portfolio

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// parityIterations caps the fixed-point risk-parity loop. Convergence
	// is not guaranteed; the cap bounds runtime.
	parityIterations = 1000

	// parityTolerance stops the loop once weights move less than this.
	parityTolerance = 1e-8

	minVolatility = 1e-8
)

// EqualWeight allocates 1/N to each of n names.
func EqualWeight(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}

// InverseVolatility weights each name inversely to its volatility, so
// calmer names carry more of the book.
func InverseVolatility(cov *mat.SymDense) []float64 {
	vols := diagVols(cov)
	w := make([]float64, len(vols))
	var sum float64
	for i, v := range vols {
		w[i] = 1 / v
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// MaxDiversification approximates the maximum-diversification portfolio by
// fixed-point iteration: seed at inverse-volatility weights, then
// repeatedly rescale each weight by the ratio of its volatility-share
// target to its current risk contribution, renormalizing each round. Stops
// on negligible movement or the iteration cap.
func MaxDiversification(cov *mat.SymDense) []float64 {
	n := cov.SymmetricDim()
	vols := diagVols(cov)
	var volSum float64
	for _, v := range vols {
		volSum += v
	}

	weights := InverseVolatility(cov)
	vecW := mat.NewVecDense(n, nil)
	marginal := mat.NewVecDense(n, nil)

	for iter := 0; iter < parityIterations; iter++ {
		for i, w := range weights {
			vecW.SetVec(i, w)
		}

		portVar := mat.Inner(vecW, cov, vecW)
		portVol := math.Sqrt(math.Max(portVar, 1e-16))
		marginal.MulVec(cov, vecW)

		next := make([]float64, n)
		var total float64
		for i := range next {
			contribution := weights[i] * marginal.AtVec(i) / portVol
			target := vols[i] / volSum
			w := weights[i] * target / math.Max(contribution, 1e-12)
			if w < 0 {
				w = 0
			}
			next[i] = w
			total += w
		}
		if total > 0 {
			for i := range next {
				next[i] /= total
			}
		}

		var maxDelta float64
		for i := range next {
			if d := math.Abs(next[i] - weights[i]); d > maxDelta {
				maxDelta = d
			}
		}
		weights = next
		if maxDelta < parityTolerance {
			break
		}
	}

	return weights
}

// diagVols extracts per-asset volatilities from a covariance diagonal,
// floored to avoid division blowups.
func diagVols(cov *mat.SymDense) []float64 {
	n := cov.SymmetricDim()
	vols := make([]float64, n)
	for i := 0; i < n; i++ {
		vols[i] = math.Max(math.Sqrt(cov.At(i, i)), minVolatility)
	}
	return vols
}
