package domain

// PricePoint is one daily OHLCV observation.
type PricePoint struct {
	Date   string // YYYY-MM-DD, UTC
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume *int64
}

// PriceHistory is a ticker's daily price series in ascending date order.
type PriceHistory struct {
	Ticker string
	Points []PricePoint
}

// Closes returns the close column in date order.
func (h PriceHistory) Closes() []float64 {
	out := make([]float64, len(h.Points))
	for i, p := range h.Points {
		out[i] = p.Close
	}
	return out
}

// Len returns the number of observations.
func (h PriceHistory) Len() int { return len(h.Points) }

// SnapshotProvider is the market-data collaborator contract for company
// snapshots and financial statements. Implementations must normalize
// exchange suffixes before any upstream call, be idempotent, and report
// unavailability through ok=false rather than panicking past the boundary.
type SnapshotProvider interface {
	// FetchSnapshot returns the company snapshot, or ok=false when the
	// ticker's data is unavailable.
	FetchSnapshot(ticker, exchange string) (*Snapshot, bool)

	// FetchStatements returns the three statement tables; any of the
	// three may be nil inside the result when that table is unavailable.
	// ok=false means no statement data at all could be retrieved.
	FetchStatements(ticker string) (Statements, bool)
}

// PriceProvider is the market-data collaborator contract for historical
// prices. period is a provider-native label such as "1y" or "5y".
type PriceProvider interface {
	FetchPriceHistory(ticker, period string) (PriceHistory, bool)
}

// UniverseProvider is the ticker-universe collaborator contract: an
// ordered constituent list for a named market index, market-cap
// descending, truncatable to a requested count.
type UniverseProvider interface {
	Tickers(index string, limit int) ([]string, error)
}
