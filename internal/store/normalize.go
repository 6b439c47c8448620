package store

import (
	"strings"

	"github.com/IamAdiPra/Stock-Project/internal/config"
)

// NormalizeTicker converts a raw ticker into the data provider's symbol:
// uppercase, exchange suffix appended when the exchange uses one, and for
// US listings dots converted to dashes (BRK.B becomes BRK-B). Already
// suffixed tickers pass through unchanged.
func NormalizeTicker(ticker, exchange string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))

	suffix, known := config.ExchangeSuffixes[exchange]
	if !known || suffix == "" {
		t = strings.ReplaceAll(t, ".", "-")
	}
	if suffix != "" && !strings.HasSuffix(t, suffix) {
		t += suffix
	}
	return t
}
