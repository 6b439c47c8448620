package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatement_RaggedRowIsContractViolation(t *testing.T) {
	_, err := NewStatement([]string{"2025", "2024"}, map[string][]float64{
		"Total Revenue": {100},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Total Revenue")
}

func TestStatement_ValueProbesCandidates(t *testing.T) {
	s, err := NewStatement([]string{"2025", "2024"}, map[string][]float64{
		"Long Term Debt": {500, 450},
	})
	require.NoError(t, err)

	v := s.Value(KeysTotalDebt, 0)
	require.NotNil(t, v, "second candidate label should match")
	assert.Equal(t, 500.0, *v)

	assert.Nil(t, s.Value(KeysTotalEquity, 0))
	assert.Nil(t, s.Value(KeysTotalDebt, 5), "out-of-range period")
}

func TestStatement_ValueSkipsNaNAndZero(t *testing.T) {
	s, err := NewStatement([]string{"2025"}, map[string][]float64{
		"Total Debt":     {math.NaN()},
		"Long Term Debt": {0},
		"Net Debt":       {300},
	})
	require.NoError(t, err)

	v := s.Value(KeysTotalDebt, 0)
	require.NotNil(t, v)
	assert.Equal(t, 300.0, *v, "NaN and zero candidates are passed over")
}

func TestStatement_NilReceiver(t *testing.T) {
	var s *Statement
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.NumPeriods())
	assert.Nil(t, s.Value(KeysRevenue, 0))
	assert.Nil(t, s.Row(KeysRevenue))
}

func TestStatement_RowReturnsCopy(t *testing.T) {
	s, err := NewStatement([]string{"2025", "2024"}, map[string][]float64{
		"Free Cash Flow": {10, 20},
	})
	require.NoError(t, err)

	row := s.Row(KeysFreeCashFlow)
	require.Equal(t, []float64{10, 20}, row)

	row[0] = 999
	again := s.Row(KeysFreeCashFlow)
	assert.Equal(t, 10.0, again[0], "mutating a returned row must not touch the statement")
}

func TestSnapshot_Field(t *testing.T) {
	snap := &Snapshot{Fields: map[string]float64{"beta": 1.2}}

	b := snap.Field("beta")
	require.NotNil(t, b)
	assert.Equal(t, 1.2, *b)

	assert.Nil(t, snap.Field("trailingPE"))

	var nilSnap *Snapshot
	assert.Nil(t, nilSnap.Field("beta"))
}

func TestScreenedUniverse_Helpers(t *testing.T) {
	u := ScreenedUniverse{
		Stocks: []ScreenedStock{
			{Ticker: "AAA"}, {Ticker: "BBB"}, {Ticker: "CCC"},
		},
		TotalScreened: 10,
		Passed:        3,
	}

	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, u.Tickers())
	assert.Len(t, u.Top(2), 2)
	assert.Len(t, u.Top(50), 3)
	assert.InDelta(t, 30.0, u.PassRatePct(), 1e-12)

	empty := ScreenedUniverse{}
	assert.Equal(t, 0.0, empty.PassRatePct())
}
