package forecast

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// Engine evaluates the three valuation models across all scenarios and
// composes them into one forecast per company.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a forecast engine.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		log: log.With().Str("module", "forecast").Logger(),
	}
}

// Composite runs DCF, earnings-multiple and ROIC-growth under every
// scenario and averages the horizon prices of whichever models succeeded,
// per scenario. A model failing one scenario never aborts the others, but
// at least one model must succeed for the base scenario or the whole
// forecast is nil. closes feed the risk metrics and may be nil.
func (e *Engine) Composite(snap *domain.Snapshot, stmts domain.Statements, closes []float64, market config.Market) *domain.Forecast {
	if snap == nil || snap.Price == nil {
		return nil
	}
	price := *snap.Price
	riskFree := config.RiskFreeRate(market)

	f := &domain.Forecast{
		Ticker:       snap.Ticker,
		Name:         snap.Name,
		CurrentPrice: price,
		DCF:          make(map[domain.Scenario]*domain.DCFResult, len(domain.Scenarios)),
		Multiple:     make(map[domain.Scenario]*domain.MultipleResult, len(domain.Scenarios)),
		ROICGrowth:   make(map[domain.Scenario]*domain.ROICGrowthResult, len(domain.Scenarios)),
		Composite:    make(map[domain.Scenario]domain.HorizonPrices, len(domain.Scenarios)),
	}

	for _, sc := range domain.Scenarios {
		f.DCF[sc] = DCF(snap, stmts, riskFree, sc)
		f.Multiple[sc] = EarningsMultiple(snap, stmts.Income, sc)
		f.ROICGrowth[sc] = ROICGrowth(snap, stmts, sc)
	}

	if f.DCF[domain.ScenarioBase] != nil {
		f.ModelsUsed++
	}
	if f.Multiple[domain.ScenarioBase] != nil {
		f.ModelsUsed++
	}
	if f.ROICGrowth[domain.ScenarioBase] != nil {
		f.ModelsUsed++
	}
	if f.ModelsUsed == 0 {
		e.log.Debug().Str("ticker", snap.Ticker).Msg("No valuation model succeeded for base scenario")
		return nil
	}

	for _, sc := range domain.Scenarios {
		f.Composite[sc] = e.average(f, sc, price)
	}

	f.MarketBenchmark = MarketBenchmark(market, price)

	base1y := f.Composite[domain.ScenarioBase][domain.Horizon1Y]
	projected := (base1y - price) / price
	f.Risk = Risk(snap, closes, riskFree, &projected)

	if dcf := f.DCF[domain.ScenarioBase]; dcf != nil {
		f.DCFIntrinsicValue = &dcf.IntrinsicValuePerShare
		f.MarginOfSafetyPct = &dcf.MarginOfSafetyPct
	}

	market1y := (f.MarketBenchmark[domain.Horizon1Y] - price) / price * 100
	f.Alpha1YPct = projected*100 - market1y

	e.log.Debug().
		Str("ticker", snap.Ticker).
		Int("models_used", f.ModelsUsed).
		Float64("alpha_1y_pct", f.Alpha1YPct).
		Msg("Composite forecast complete")

	return f
}

// average combines the horizon prices of the models that succeeded for one
// scenario. A scenario with no surviving model degrades to the current
// price at every horizon.
func (e *Engine) average(f *domain.Forecast, sc domain.Scenario, price float64) domain.HorizonPrices {
	var sources []domain.HorizonPrices
	if m := f.DCF[sc]; m != nil {
		sources = append(sources, m.HorizonPrices)
	}
	if m := f.Multiple[sc]; m != nil {
		sources = append(sources, m.HorizonPrices)
	}
	if m := f.ROICGrowth[sc]; m != nil {
		sources = append(sources, m.HorizonPrices)
	}

	out := make(domain.HorizonPrices, len(domain.Horizons))
	for _, h := range domain.Horizons {
		if len(sources) == 0 {
			out[h] = price
			continue
		}
		var sum float64
		for _, s := range sources {
			sum += s[h]
		}
		out[h] = sum / float64(len(sources))
	}
	return out
}

// MarketBenchmark compounds the market's long-run annual return forward
// from the current price at every horizon, as the comparison trajectory
// for alpha.
func MarketBenchmark(market config.Market, price float64) domain.HorizonPrices {
	annual := config.MarketAnnualReturn(market)
	out := make(domain.HorizonPrices, len(domain.Horizons))
	for _, h := range domain.Horizons {
		out[h] = price * math.Pow(1+annual, domain.HorizonYears[h])
	}
	return out
}
