package metrics

import (
	"github.com/rs/zerolog"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// TrendYears is the window for ROIC and FCF trend extraction.
const TrendYears = 3

// Engine computes full metrics records. It is stateless; the logger is the
// only dependency.
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a metrics engine.
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		log: log.With().Str("module", "metrics").Logger(),
	}
}

// Compute derives the full metrics record for one company. closes may be
// nil when no price history is available; momentum sub-scores degrade
// accordingly. Every derived metric is independently optional.
func (e *Engine) Compute(snap *domain.Snapshot, stmts domain.Statements, closes []float64) domain.MetricsRecord {
	rec := domain.MetricsRecord{
		Confidence: Grade(snap, stmts),
	}
	if snap != nil {
		rec.Ticker = snap.Ticker
	}

	rec.ROIC = ROIC(stmts.Income, stmts.Balance)
	rec.ROICTrend = ROICTrend(stmts.Income, stmts.Balance, TrendYears)
	rec.DebtToEquity = DebtToEquity(stmts.Balance)
	rec.FCF3yPositive = HasPositiveFCF3y(stmts.CashFlow)
	rec.TTMFCF = TTMFCF(snap)
	rec.FCFTrend = FCFTrend(stmts.CashFlow, TrendYears)

	rec.DistanceFromHigh = DistanceFromHigh(snap)
	rec.DistanceFromLow = DistanceFromLow(snap)
	rec.NearLow = NearLow(snap, config.NearLowThresholdPct)

	rec.EarningsQuality = EarningsQuality(stmts)

	var price *float64
	if snap != nil {
		price = snap.Price
	}
	rec.Momentum = MomentumScore(closes, price)

	e.log.Debug().
		Str("ticker", rec.Ticker).
		Str("confidence", string(rec.Confidence)).
		Bool("roic_defined", rec.ROIC != nil).
		Bool("momentum_defined", rec.Momentum.Composite != nil).
		Msg("Computed metrics record")

	return rec
}

// Grade rates the completeness of a company's input data.
// High: all three statements with at least three periods each and a known
// beta. Low: any statement wholly absent. Medium otherwise.
func Grade(snap *domain.Snapshot, stmts domain.Statements) domain.Confidence {
	if stmts.Income.Empty() || stmts.Balance.Empty() || stmts.CashFlow.Empty() {
		return domain.ConfidenceLow
	}

	deep := stmts.Income.NumPeriods() >= 3 &&
		stmts.Balance.NumPeriods() >= 3 &&
		stmts.CashFlow.NumPeriods() >= 3
	if deep && snap.Field("beta") != nil {
		return domain.ConfidenceHigh
	}
	return domain.ConfidenceMedium
}
