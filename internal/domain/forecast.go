package domain

// Scenario selects a growth-optimism path for valuation projections.
type Scenario string

const (
	ScenarioBull Scenario = "bull"
	ScenarioBase Scenario = "base"
	ScenarioBear Scenario = "bear"
)

// Scenarios lists all scenarios in canonical order.
var Scenarios = []Scenario{ScenarioBull, ScenarioBase, ScenarioBear}

// Horizon identifies a projection horizon.
type Horizon string

const (
	Horizon6M Horizon = "6m"
	Horizon1Y Horizon = "1y"
	Horizon2Y Horizon = "2y"
	Horizon5Y Horizon = "5y"
)

// Horizons lists all horizons in ascending order.
var Horizons = []Horizon{Horizon6M, Horizon1Y, Horizon2Y, Horizon5Y}

// HorizonYears maps each horizon to its length in years.
var HorizonYears = map[Horizon]float64{
	Horizon6M: 0.5,
	Horizon1Y: 1.0,
	Horizon2Y: 2.0,
	Horizon5Y: 5.0,
}

// HorizonPrices maps projection horizons to projected prices.
type HorizonPrices map[Horizon]float64

// DCFResult is the output of the discounted-cash-flow model for one
// scenario.
type DCFResult struct {
	IntrinsicValuePerShare float64
	MarginOfSafetyPct      float64
	WACC                   float64
	FCFCAGR                float64
	ProjectedFCFs          []float64
	TerminalValue          float64
	HorizonPrices          HorizonPrices
}

// MultipleResult is the output of the earnings-multiple model for one
// scenario.
type MultipleResult struct {
	CurrentEPS    float64
	EPSCAGR       float64
	TargetPE      float64
	HorizonPrices HorizonPrices
}

// ROICGrowthResult is the output of the ROIC sustainable-growth model for
// one scenario.
type ROICGrowthResult struct {
	ROIC              float64
	ReinvestmentRate  float64
	SustainableGrowth float64
	CurrentEPS        float64
	TargetPE          float64
	HorizonPrices     HorizonPrices
}

// RiskMetrics holds per-company risk figures derived from one year of
// daily closes. Beta is always present (defaulted when unknown); the rest
// are nil when history is insufficient.
type RiskMetrics struct {
	Beta             float64
	AnnualVolatility *float64
	MaxDrawdownPct   *float64
	SharpeRatio      *float64
}

// Forecast is the full multi-model, multi-scenario valuation output for one
// company. Model maps hold nil for scenarios the model could not compute.
type Forecast struct {
	Ticker       string
	Name         string
	CurrentPrice float64

	DCF        map[Scenario]*DCFResult
	Multiple   map[Scenario]*MultipleResult
	ROICGrowth map[Scenario]*ROICGrowthResult

	// Composite holds the per-scenario average of the horizon prices of
	// whichever models succeeded.
	Composite map[Scenario]HorizonPrices

	// MarketBenchmark compounds the market's long-run annual return
	// forward from the current price, for alpha comparison.
	MarketBenchmark HorizonPrices

	Risk RiskMetrics

	DCFIntrinsicValue *float64
	MarginOfSafetyPct *float64
	Alpha1YPct        float64
	ModelsUsed        int
}
