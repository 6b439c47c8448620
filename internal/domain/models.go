// Package domain defines the data model shared by the screening, forecast,
// portfolio and backtest modules, and the contracts of the external data
// collaborators. All derived records are immutable after construction:
// downstream modules build new records rather than mutating upstream output.
package domain

// Snapshot is one company's market-data snapshot: identity, current price
// and a flat map of named fundamental fields as delivered by the provider.
// Lifetime is one screening run; never mutated after fetch.
type Snapshot struct {
	Ticker   string
	Exchange string
	Name     string
	Sector   string
	Industry string

	Price            *float64
	MarketCap        *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64

	// Fields holds named fundamentals keyed by provider field name
	// (freeCashflow, trailingPE, forwardPE, sharesOutstanding, beta,
	// payoutRatio, earningsGrowth, ...). Absent fields are absent keys.
	Fields map[string]float64
}

// Field returns a named fundamental, or nil when the provider omitted it.
func (s *Snapshot) Field(name string) *float64 {
	if s == nil || s.Fields == nil {
		return nil
	}
	if v, ok := s.Fields[name]; ok {
		return &v
	}
	return nil
}

// Confidence grades how complete a company's input data was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ROICPoint is one year of the ROIC trend, oldest first in the trend slice.
type ROICPoint struct {
	Period string
	ROIC   *float64
}

// FCFPoint is one year of the free-cash-flow trend, oldest first.
type FCFPoint struct {
	Period string
	FCF    *float64
}

// EarningsQuality holds the composite earnings-quality score and its
// sub-signals. Each sub-score is independently optional; the composite is
// renormalized over the available weights.
type EarningsQuality struct {
	AccrualScore        *float64
	CashConversionScore *float64
	RevenueQualityScore *float64
	Composite           *float64
}

// Momentum holds the composite momentum score and its sub-signals, each on
// a 0-100 scale and independently optional.
type Momentum struct {
	RSI       *float64 // raw RSI-14
	RSIScore  *float64
	MACDScore *float64
	SMAScore  *float64
	Composite *float64
}

// MetricsRecord is one company's derived metrics for a screening run.
// Every metric is independently optional: a missing upstream field
// propagates as nil, never as zero.
type MetricsRecord struct {
	Ticker string

	ROIC             *float64
	ROICTrend        []ROICPoint
	DebtToEquity     *float64
	FCF3yPositive    bool
	TTMFCF           *float64
	FCFTrend         []FCFPoint
	DistanceFromHigh *float64 // percent, negative below peak
	DistanceFromLow  *float64 // percent, positive above trough
	NearLow          bool

	EarningsQuality EarningsQuality
	Momentum        Momentum

	Confidence Confidence
}

// ScreenedStock is a survivor of the screening pipeline: its metrics plus
// rank and score annotations.
type ScreenedStock struct {
	Ticker    string
	Name      string
	Price     *float64
	MarketCap *float64
	High52    *float64
	Low52     *float64

	Metrics MetricsRecord

	Rank        int
	ValueScore  float64
	HybridScore *float64
}

// ScreenedUniverse is the ordered result set of a screening run. Rank is
// dense and 1-based; the active score is non-increasing with rank.
type ScreenedUniverse struct {
	Stocks []ScreenedStock

	// Summary statistics for the run.
	TotalScreened int
	Passed        int
}

// Tickers returns the survivors' tickers in rank order.
func (u ScreenedUniverse) Tickers() []string {
	out := make([]string, len(u.Stocks))
	for i, s := range u.Stocks {
		out[i] = s.Ticker
	}
	return out
}

// Top returns the first n survivors (or all when fewer).
func (u ScreenedUniverse) Top(n int) []ScreenedStock {
	if n >= len(u.Stocks) {
		return u.Stocks
	}
	return u.Stocks[:n]
}

// PassRatePct returns the fraction of screened names that survived, as a
// percentage. Zero when nothing was screened.
func (u ScreenedUniverse) PassRatePct() float64 {
	if u.TotalScreened == 0 {
		return 0
	}
	return float64(u.Passed) / float64(u.TotalScreened) * 100
}

// IssueKind classifies a data-quality diagnostic.
type IssueKind string

const (
	IssueMissingData         IssueKind = "missing_data"
	IssueDegenerateInput     IssueKind = "degenerate_input"
	IssueInsufficientHistory IssueKind = "insufficient_history"
	IssueUnavailable         IssueKind = "unavailable"
)

// Issue is one collected data-quality diagnostic. Issues are returned
// alongside pipeline results instead of being accumulated in shared state.
type Issue struct {
	Ticker  string
	Kind    IssueKind
	Message string
}
