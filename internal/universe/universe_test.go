package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstituentLists(t *testing.T) {
	for name, list := range map[string][]string{
		"nifty100":    Nifty100(),
		"sp500Top100": SP500Top100(),
		"ftse100":     FTSE100(),
	} {
		assert.Len(t, list, 100, name)

		seen := make(map[string]bool, len(list))
		for _, tk := range list {
			assert.NotEmpty(t, tk, name)
			assert.False(t, seen[tk], "%s has duplicate %s", name, tk)
			seen[tk] = true
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := Nifty100()
	a[0] = "MUTATED"
	assert.NotEqual(t, "MUTATED", Nifty100()[0])
}

func TestProviderTickers(t *testing.T) {
	p := NewProvider()

	full, err := p.Tickers("NIFTY100", 0)
	require.NoError(t, err)
	assert.Len(t, full, 100)
	assert.Equal(t, "RELIANCE", full[0], "largest cap comes first")

	top, err := p.Tickers("nifty100", 10)
	require.NoError(t, err)
	assert.Len(t, top, 10, "index names are case-insensitive")
	assert.Equal(t, full[:10], top)

	over, err := p.Tickers("SP500", 500)
	require.NoError(t, err)
	assert.Len(t, over, 100, "limit beyond the list returns everything")

	_, err = p.Tickers("DAX", 10)
	assert.Error(t, err)
}
