package domain

// Allocation is one name's share of a constructed portfolio.
type Allocation struct {
	Ticker     string
	Name       string
	Weight     float64
	Amount     float64 // Weight x investment amount
	ROIC       *float64
	ValueScore *float64
}

// PortfolioMetrics holds portfolio-level risk and return figures,
// annualized from the weighted daily-return series.
type PortfolioMetrics struct {
	ExpectedReturn float64
	Volatility     float64
	SharpeRatio    float64
	MaxDrawdown    float64
}

// Portfolio is a risk-aware allocation over screened names with usable
// price history. Weights sum to 1.0 and each respects the concentration
// cap applied at construction.
type Portfolio struct {
	Allocations []Allocation // sorted by weight descending
	Metrics     PortfolioMetrics

	// Tickers lists the included names in returns-matrix column order;
	// Correlations is the pairwise daily-return correlation matrix in
	// that same order.
	Tickers      []string
	Correlations [][]float64
}

// BacktestPoint is one dated observation of a cumulative-return series.
type BacktestPoint struct {
	Date       string // YYYY-MM-DD
	Cumulative float64
}

// BacktestMetrics holds the aggregate performance of a backtest run.
// Benchmark-dependent fields are zero when no benchmark data was available.
type BacktestMetrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	BenchmarkReturn  float64
	Alpha            float64
	MaxDrawdown      float64
	Sharpe           float64
	Volatility       float64
	WinRate          float64
}

// StockPerformance is one ticker's backtest attribution.
type StockPerformance struct {
	Ticker        string
	Name          string
	TotalReturn   float64
	BeatBenchmark bool
}

// BacktestLimitation is surfaced with every result: the screen uses
// today's fundamentals applied retroactively, so results carry
// survivorship bias and are directional, not predictive.
const BacktestLimitation = "screening uses current fundamentals applied retroactively; " +
	"results carry survivorship bias and are directional, not predictive"

// BacktestResult is the output of one backtest run.
type BacktestResult struct {
	PortfolioSeries []BacktestPoint
	BenchmarkSeries []BacktestPoint // nil when benchmark data unavailable
	Metrics         BacktestMetrics
	Stocks          []StockPerformance // sorted by total return descending
	ValidTickers    []string
	PeriodLabel     string
	Limitation      string
}
