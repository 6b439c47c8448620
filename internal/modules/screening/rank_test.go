package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

func stocksWithROIC(values []*float64) []domain.ScreenedStock {
	out := make([]domain.ScreenedStock, len(values))
	for i, v := range values {
		out[i].Metrics.ROIC = v
	}
	return out
}

func fp(v float64) *float64 { return &v }

func TestPercentileRanks(t *testing.T) {
	stocks := stocksWithROIC([]*float64{fp(10), fp(20), fp(20), fp(40), nil})

	ranks := percentileRanks(stocks, func(s domain.ScreenedStock) *float64 {
		return s.Metrics.ROIC
	})
	require.Len(t, ranks, 5)

	require.NotNil(t, ranks[0])
	assert.InDelta(t, 0.25, *ranks[0], 1e-12)

	// The tied pair shares ordinal ranks 2 and 3, averaged to 2.5 of 4.
	require.NotNil(t, ranks[1])
	assert.InDelta(t, 0.625, *ranks[1], 1e-12)
	require.NotNil(t, ranks[2])
	assert.InDelta(t, 0.625, *ranks[2], 1e-12)

	require.NotNil(t, ranks[3])
	assert.InDelta(t, 1.0, *ranks[3], 1e-12)

	assert.Nil(t, ranks[4], "undefined values stay out of the ranking")
}

func TestPercentileRanks_UndefinedDoesNotShiftOthers(t *testing.T) {
	with := stocksWithROIC([]*float64{fp(1), fp(2), nil})
	without := stocksWithROIC([]*float64{fp(1), fp(2)})

	get := func(s domain.ScreenedStock) *float64 { return s.Metrics.ROIC }
	a := percentileRanks(with, get)
	b := percentileRanks(without, get)

	assert.Equal(t, *b[0], *a[0])
	assert.Equal(t, *b[1], *a[1])
}

func TestPercentileRanks_AllUndefined(t *testing.T) {
	ranks := percentileRanks(stocksWithROIC([]*float64{nil, nil}), func(s domain.ScreenedStock) *float64 {
		return s.Metrics.ROIC
	})
	assert.Equal(t, []*float64{nil, nil}, ranks)
}

func TestBlend(t *testing.T) {
	assert.InDelta(t, 0.6*0.5+0.4*1.0, blend(fp(0.5), 0.6, fp(1.0), 0.4), 1e-12)
	assert.InDelta(t, 0.5, blend(fp(0.5), 0.6, nil, 0.4), 1e-12, "single component carries full weight")
	assert.Zero(t, blend(nil, 0.6, nil, 0.4))
}
