// Package universe provides the constituent ticker lists of the supported
// market indices, ordered by market capitalization.
package universe

import (
	"fmt"
	"strings"

	"github.com/IamAdiPra/Stock-Project/internal/config"
)

// Nifty100 returns the NIFTY 100 constituents, largest first.
func Nifty100() []string {
	return clone(nifty100)
}

// SP500Top100 returns the 100 largest S&P 500 constituents.
func SP500Top100() []string {
	return clone(sp500Top100)
}

// FTSE100 returns the FTSE 100 constituents, largest first.
func FTSE100() []string {
	return clone(ftse100)
}

// Provider serves index constituent lists. It implements the
// ticker-universe collaborator contract.
type Provider struct{}

// NewProvider creates a universe provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Tickers returns up to limit constituents of the named index, largest
// market cap first. limit <= 0 means the full list. Unknown indices are an
// error.
func (p *Provider) Tickers(index string, limit int) ([]string, error) {
	var list []string
	switch config.Market(strings.ToUpper(index)) {
	case config.MarketNifty100:
		list = Nifty100()
	case config.MarketSP500:
		list = SP500Top100()
	case config.MarketFTSE100:
		list = FTSE100()
	default:
		return nil, fmt.Errorf("unknown index %q", index)
	}

	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
