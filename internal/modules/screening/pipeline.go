// Package screening runs the quality, valuation and scoring pipeline over a
// candidate universe and produces a ranked set of survivors.
package screening

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/internal/modules/metrics"
)

// Candidate is one company entering the pipeline: its snapshot, statement
// tables and (optionally) a daily close history for momentum scoring.
type Candidate struct {
	Snapshot   *domain.Snapshot
	Statements domain.Statements
	Closes     []float64
}

// Options holds the pipeline thresholds. MinEarningsQuality is optional;
// nil disables the earnings-quality floor entirely.
type Options struct {
	MinROIC             float64
	MaxDebtEquity       float64
	RequireFCF3y        bool
	NearLowThresholdPct float64
	MinEarningsQuality  *float64
	WithMomentum        bool
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() Options {
	return Options{
		MinROIC:             config.MinROIC,
		MaxDebtEquity:       config.MaxDebtEquity,
		RequireFCF3y:        true,
		NearLowThresholdPct: config.NearLowThresholdPct,
	}
}

// Pipeline screens candidates into a ranked universe.
type Pipeline struct {
	log     zerolog.Logger
	metrics *metrics.Engine
}

// NewPipeline creates a screening pipeline.
func NewPipeline(log zerolog.Logger) *Pipeline {
	return &Pipeline{
		log:     log.With().Str("module", "screening").Logger(),
		metrics: metrics.NewEngine(log),
	}
}

// Screen computes a metrics record per candidate, applies the exclusion
// filters, scores the survivor set and ranks it. Empty input or an empty
// survivor set yields an empty well-formed universe, never an error. The
// returned issues describe why individual names dropped out.
func (p *Pipeline) Screen(candidates []Candidate, opts Options) (domain.ScreenedUniverse, []domain.Issue) {
	universe := domain.ScreenedUniverse{TotalScreened: len(candidates)}
	var issues []domain.Issue

	for _, c := range candidates {
		if c.Snapshot == nil {
			issues = append(issues, domain.Issue{
				Kind:    domain.IssueUnavailable,
				Message: "snapshot unavailable",
			})
			continue
		}

		rec := p.metrics.Compute(c.Snapshot, c.Statements, c.Closes)
		rec.NearLow = metrics.NearLow(c.Snapshot, opts.NearLowThresholdPct)

		stock, keep := p.apply(c.Snapshot, rec, opts, &issues)
		if !keep {
			continue
		}
		universe.Stocks = append(universe.Stocks, stock)
	}

	score(universe.Stocks, opts.WithMomentum)
	rank(universe.Stocks, opts.WithMomentum)
	universe.Passed = len(universe.Stocks)

	p.log.Info().
		Int("screened", universe.TotalScreened).
		Int("passed", universe.Passed).
		Bool("momentum", opts.WithMomentum).
		Msg("Screening run complete")

	return universe, issues
}

// apply runs the exclusion filters for one company. A metric that a strict
// filter needs but that is undefined excludes the company: an incomparable
// value can never satisfy a strict threshold.
func (p *Pipeline) apply(snap *domain.Snapshot, rec domain.MetricsRecord, opts Options, issues *[]domain.Issue) (domain.ScreenedStock, bool) {
	if rec.ROIC == nil {
		*issues = append(*issues, domain.Issue{
			Ticker:  rec.Ticker,
			Kind:    domain.IssueMissingData,
			Message: "ROIC undefined, excluded by quality filter",
		})
		return domain.ScreenedStock{}, false
	}
	if *rec.ROIC <= opts.MinROIC {
		return domain.ScreenedStock{}, false
	}

	if rec.DebtToEquity == nil {
		*issues = append(*issues, domain.Issue{
			Ticker:  rec.Ticker,
			Kind:    domain.IssueMissingData,
			Message: "debt-to-equity undefined, excluded by quality filter",
		})
		return domain.ScreenedStock{}, false
	}
	if *rec.DebtToEquity >= opts.MaxDebtEquity {
		return domain.ScreenedStock{}, false
	}

	if opts.RequireFCF3y && !rec.FCF3yPositive {
		return domain.ScreenedStock{}, false
	}

	// Undefined earnings quality is never penalized by the optional floor.
	if opts.MinEarningsQuality != nil && rec.EarningsQuality.Composite != nil &&
		*rec.EarningsQuality.Composite < *opts.MinEarningsQuality {
		return domain.ScreenedStock{}, false
	}

	if rec.DistanceFromLow == nil {
		*issues = append(*issues, domain.Issue{
			Ticker:  rec.Ticker,
			Kind:    domain.IssueMissingData,
			Message: "52-week low distance undefined, excluded by valuation filter",
		})
		return domain.ScreenedStock{}, false
	}
	if !rec.NearLow {
		return domain.ScreenedStock{}, false
	}

	if rec.DistanceFromHigh == nil {
		*issues = append(*issues, domain.Issue{
			Ticker:  rec.Ticker,
			Kind:    domain.IssueMissingData,
			Message: fmt.Sprintf("52-week high missing for %s, value score uses ROIC percentile only", rec.Ticker),
		})
	}

	return domain.ScreenedStock{
		Ticker:    snap.Ticker,
		Name:      snap.Name,
		Price:     snap.Price,
		MarketCap: snap.MarketCap,
		High52:    snap.FiftyTwoWeekHigh,
		Low52:     snap.FiftyTwoWeekLow,
		Metrics:   rec,
	}, true
}

// score assigns value scores (and hybrid scores when requested) within the
// survivor set. Percentile ranks are computed over the survivors only, so
// the configured weights reflect true influence regardless of each metric's
// numeric range.
func score(stocks []domain.ScreenedStock, withMomentum bool) {
	if len(stocks) == 0 {
		return
	}

	roicRank := percentileRanks(stocks, func(s domain.ScreenedStock) *float64 {
		return s.Metrics.ROIC
	})
	discountRank := percentileRanks(stocks, func(s domain.ScreenedStock) *float64 {
		if s.Metrics.DistanceFromHigh == nil {
			return nil
		}
		d := *s.Metrics.DistanceFromHigh
		if d < 0 {
			d = -d
		}
		return &d
	})

	for i := range stocks {
		stocks[i].ValueScore = blend(
			roicRank[i], config.ValueScoreROICWeight,
			discountRank[i], config.ValueScoreDiscountWeight,
		)
	}

	if !withMomentum {
		return
	}

	momentumRank := percentileRanks(stocks, func(s domain.ScreenedStock) *float64 {
		return s.Metrics.Momentum.Composite
	})
	for i := range stocks {
		h := stocks[i].ValueScore
		if momentumRank[i] != nil {
			h = config.HybridValueWeight*stocks[i].ValueScore +
				config.HybridMomentumWeight**momentumRank[i]
		}
		stocks[i].HybridScore = &h
	}
}

// blend averages two optional percentile ranks by their weights,
// renormalizing over whichever are present. Both absent yields zero.
func blend(a *float64, wa float64, b *float64, wb float64) float64 {
	var sum, weight float64
	if a != nil {
		sum += wa * *a
		weight += wa
	}
	if b != nil {
		sum += wb * *b
		weight += wb
	}
	if weight == 0 {
		return 0
	}
	return sum / weight
}

// rank sorts descending by the active score column and assigns a dense
// 1-based rank. The sort is stable, so ties keep discovery order.
func rank(stocks []domain.ScreenedStock, withMomentum bool) {
	active := func(s domain.ScreenedStock) float64 {
		if withMomentum && s.HybridScore != nil {
			return *s.HybridScore
		}
		return s.ValueScore
	}

	sort.SliceStable(stocks, func(i, j int) bool {
		return active(stocks[i]) > active(stocks[j])
	})

	r := 0
	prev := 0.0
	for i := range stocks {
		if i == 0 || active(stocks[i]) != prev {
			r++
			prev = active(stocks[i])
		}
		stocks[i].Rank = r
	}
}
