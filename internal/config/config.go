// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Market identifies a supported market index universe.
type Market string

const (
	MarketSP500    Market = "SP500"
	MarketNifty100 Market = "NIFTY100"
	MarketFTSE100  Market = "FTSE100"
)

// RiskTolerance selects a portfolio concentration profile.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "Conservative"
	RiskModerate     RiskTolerance = "Moderate"
	RiskAggressive   RiskTolerance = "Aggressive"
)

// Screening thresholds.
const (
	MinROIC             = 0.12 // 12% minimum return on invested capital
	MaxDebtEquity       = 1.0  // maximum debt-to-equity ratio
	NearLowThresholdPct = 10.0 // price within 10% of 52-week low
	MinEarningsQuality  = 40.0 // optional earnings-quality floor (0-100)
	MinMarketCap        = 1_000_000_000
)

// Score weights.
const (
	ValueScoreROICWeight     = 0.6
	ValueScoreDiscountWeight = 0.4
	HybridValueWeight        = 0.7
	HybridMomentumWeight     = 0.3
)

// Earnings-quality sub-signal weights.
const (
	EQAccrualWeight        = 0.40
	EQCashConversionWeight = 0.35
	EQRevenueQualityWeight = 0.25
)

// Momentum sub-signal weights.
const (
	MomentumRSIWeight  = 0.35
	MomentumMACDWeight = 0.35
	MomentumSMAWeight  = 0.30
)

// Valuation model parameters.
const (
	EquityRiskPremium   = 0.055
	TerminalGrowthRate  = 0.025
	MaxProjectionGrowth = 0.30 // cap on projected annual growth
	ProjectionYears     = 5
	DefaultBeta         = 1.0
	DefaultCostOfDebt   = 0.05
	DefaultTaxRate      = 0.25
)

// Cache TTLs in seconds, owned by the data-retrieval layer.
const (
	FundamentalDataTTL = 86400 // 24 hours
	PriceDataTTL       = 3600  // 1 hour
)

// riskFreeRates holds annual risk-free rates per market.
var riskFreeRates = map[Market]float64{
	MarketSP500:    0.045,
	MarketNifty100: 0.07,
	MarketFTSE100:  0.04,
}

// marketAnnualReturns holds long-run average annual index returns.
var marketAnnualReturns = map[Market]float64{
	MarketSP500:    0.10,
	MarketNifty100: 0.12,
	MarketFTSE100:  0.07,
}

// benchmarkTickers maps each market to its benchmark index symbol.
var benchmarkTickers = map[Market]string{
	MarketSP500:    "^GSPC",
	MarketNifty100: "^NSEI",
	MarketFTSE100:  "^FTSE",
}

// concentrationLimits holds the max portfolio weight per name by risk tier.
var concentrationLimits = map[RiskTolerance]float64{
	RiskConservative: 0.15,
	RiskModerate:     0.20,
	RiskAggressive:   0.25,
}

// backtestTradingDays maps a lookback label to approximate trading days.
var backtestTradingDays = map[string]int{
	"1Y": 252,
	"3Y": 756,
	"5Y": 1260,
}

// ExchangeSuffixes maps exchange codes to ticker suffixes used by the
// market-data provider.
var ExchangeSuffixes = map[string]string{
	"NSE":    ".NS",
	"BSE":    ".BO",
	"LSE":    ".L",
	"NYSE":   "",
	"NASDAQ": "",
}

// RiskFreeRate returns the annual risk-free rate for a market.
func RiskFreeRate(market Market) float64 {
	if r, ok := riskFreeRates[market]; ok {
		return r
	}
	return riskFreeRates[MarketSP500]
}

// MarketAnnualReturn returns the long-run average annual return for a market.
func MarketAnnualReturn(market Market) float64 {
	if r, ok := marketAnnualReturns[market]; ok {
		return r
	}
	return marketAnnualReturns[MarketSP500]
}

// BenchmarkTicker returns the benchmark index symbol for a market.
// The second return is false when the market has no configured benchmark.
func BenchmarkTicker(market Market) (string, bool) {
	t, ok := benchmarkTickers[market]
	return t, ok
}

// ConcentrationLimit returns the max per-name weight for a risk tier.
func ConcentrationLimit(tolerance RiskTolerance) float64 {
	if l, ok := concentrationLimits[tolerance]; ok {
		return l
	}
	return concentrationLimits[RiskModerate]
}

// BacktestTradingDays returns the trading-day count for a lookback label
// ("1Y", "3Y", "5Y"). Unknown labels fall back to one year.
func BacktestTradingDays(period string) int {
	if d, ok := backtestTradingDays[period]; ok {
		return d
	}
	return 252
}

// Exchange returns the exchange code used for ticker normalization in a
// given market. US tickers need no suffix.
func Exchange(market Market) string {
	switch market {
	case MarketNifty100:
		return "NSE"
	case MarketFTSE100:
		return "LSE"
	default:
		return ""
	}
}

// Settings holds the screening thresholds that operators may override via
// environment variables. Zero-value construction is not intended; use Load.
type Settings struct {
	MinROIC             float64
	MaxDebtEquity       float64
	NearLowThresholdPct float64
	RequireFCF3y        bool
	LogLevel            string
}

// Load reads .env (when present) and returns settings with any environment
// overrides applied.
func Load() Settings {
	_ = godotenv.Load()

	s := Settings{
		MinROIC:             MinROIC,
		MaxDebtEquity:       MaxDebtEquity,
		NearLowThresholdPct: NearLowThresholdPct,
		RequireFCF3y:        true,
		LogLevel:            "info",
	}

	if v := os.Getenv("SCREEN_MIN_ROIC"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.MinROIC = f
		}
	}
	if v := os.Getenv("SCREEN_MAX_DEBT_EQUITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.MaxDebtEquity = f
		}
	}
	if v := os.Getenv("SCREEN_NEAR_LOW_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.NearLowThresholdPct = f
		}
	}
	if v := os.Getenv("SCREEN_REQUIRE_FCF_3Y"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.RequireFCF3y = b
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}

	return s
}
