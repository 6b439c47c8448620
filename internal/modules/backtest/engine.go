// Package backtest replays the current screen's survivors over historical
// prices as an equal-weight portfolio against a market benchmark.
//
// The screen's fundamentals are today's, applied retroactively; every
// result carries that limitation explicitly.
package backtest

import (
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/pkg/formulas"
)

const (
	// minObservations is the minimum aligned trading days for a usable run.
	minObservations = 20

	// fetchPeriod covers the longest supported lookback.
	fetchPeriod = "5y"
)

var (
	// ErrNoCandidates means the screen produced nothing to test.
	ErrNoCandidates = errors.New("backtest: no screened stocks to test")

	// ErrTooFewTickers means fewer than two names had enough history in
	// the lookback window. A single-asset series is not a portfolio.
	ErrTooFewTickers = errors.New("backtest: need at least two tickers with price history")

	// ErrInsufficientHistory means the valid names share too few trading
	// days in the window.
	ErrInsufficientHistory = errors.New("backtest: fewer than 20 aligned observations")
)

var periodLabels = map[string]string{
	"1Y": "1 Year",
	"3Y": "3 Years",
	"5Y": "5 Years",
}

// Engine runs historical backtests. It fetches price histories itself
// through the provider, since the lookback window is its own concern.
type Engine struct {
	log    zerolog.Logger
	prices domain.PriceProvider
}

// NewEngine creates a backtest engine.
func NewEngine(log zerolog.Logger, prices domain.PriceProvider) *Engine {
	return &Engine{
		log:    log.With().Str("module", "backtest").Logger(),
		prices: prices,
	}
}

// Run backtests the screened names over the lookback period ("1Y", "3Y",
// "5Y") ending at now. Names without enough history in the window are
// dropped; fewer than two survivors fails the run with a typed error so
// callers can distinguish "insufficient data" from an empty screen. A
// missing benchmark series degrades the benchmark-dependent metrics, never
// the run.
func (e *Engine) Run(stocks []domain.ScreenedStock, market config.Market, period string, now time.Time) (*domain.BacktestResult, error) {
	if len(stocks) == 0 {
		return nil, ErrNoCandidates
	}

	start := now.UTC().AddDate(0, 0, -lookbackDays(period)).Format("2006-01-02")

	var (
		tickers []string
		names   = make(map[string]string)
		sliced  [][]domain.PricePoint
	)
	for _, s := range stocks {
		h, ok := e.prices.FetchPriceHistory(s.Ticker, fetchPeriod)
		if !ok {
			continue
		}
		pts := sliceFrom(h, start)
		if len(pts) < minObservations {
			continue
		}
		tickers = append(tickers, s.Ticker)
		names[s.Ticker] = s.Name
		sliced = append(sliced, pts)
	}
	if len(tickers) < 2 {
		return nil, ErrTooFewTickers
	}

	aligned := align(tickers, sliced)
	if len(aligned.dates) < minObservations {
		return nil, ErrInsufficientHistory
	}

	daily := aligned.equalWeightReturns()
	cumulative := formulas.CumulativeSeries(daily)

	result := &domain.BacktestResult{
		PortfolioSeries: toPoints(aligned.dates[1:], cumulative),
		ValidTickers:    aligned.tickers,
		PeriodLabel:     periodLabel(period),
		Limitation:      domain.BacktestLimitation,
	}

	benchTotal := 0.0
	if bench := e.benchmarkSeries(market, start); bench != nil {
		result.BenchmarkSeries = bench
		benchTotal = bench[len(bench)-1].Cumulative - 1
	}

	result.Metrics = computeMetrics(daily, cumulative, benchTotal)
	result.Metrics.Sharpe = sharpe(result.Metrics, config.RiskFreeRate(market))

	returns := aligned.totalReturns()
	winners := 0
	for _, t := range aligned.tickers {
		ret := returns[t]
		beat := ret > benchTotal
		if beat {
			winners++
		}
		result.Stocks = append(result.Stocks, domain.StockPerformance{
			Ticker:        t,
			Name:          names[t],
			TotalReturn:   ret,
			BeatBenchmark: beat,
		})
	}
	sort.SliceStable(result.Stocks, func(i, j int) bool {
		return result.Stocks[i].TotalReturn > result.Stocks[j].TotalReturn
	})
	result.Metrics.WinRate = float64(winners) / float64(len(aligned.tickers))

	e.log.Info().
		Str("period", period).
		Int("valid_tickers", len(aligned.tickers)).
		Float64("total_return", result.Metrics.TotalReturn).
		Float64("win_rate", result.Metrics.WinRate).
		Msg("Backtest complete")

	return result, nil
}

// benchmarkSeries fetches and compounds the market's benchmark index over
// the same window. Nil when the market has no benchmark or its data is
// unavailable.
func (e *Engine) benchmarkSeries(market config.Market, start string) []domain.BacktestPoint {
	symbol, ok := config.BenchmarkTicker(market)
	if !ok {
		return nil
	}
	h, ok := e.prices.FetchPriceHistory(symbol, fetchPeriod)
	if !ok {
		return nil
	}
	pts := sliceFrom(h, start)
	if len(pts) < minObservations {
		e.log.Warn().Str("benchmark", symbol).Msg("Benchmark history too short, comparison metrics degraded")
		return nil
	}

	closes := make([]float64, len(pts))
	dates := make([]string, len(pts))
	for i, p := range pts {
		closes[i] = p.Close
		dates[i] = p.Date
	}
	return toPoints(dates[1:], formulas.CumulativeSeries(formulas.DailyReturns(closes)))
}

// computeMetrics derives the aggregate figures from the portfolio's daily
// and cumulative series. Alpha compares annualized rates over the same
// window length.
func computeMetrics(daily, cumulative []float64, benchTotal float64) domain.BacktestMetrics {
	total := cumulative[len(cumulative)-1] - 1
	m := domain.BacktestMetrics{
		TotalReturn:      total,
		AnnualizedReturn: formulas.AnnualizedReturn(total, len(daily)),
		BenchmarkReturn:  benchTotal,
		Volatility:       formulas.AnnualizedVolatility(daily),
	}
	m.Alpha = m.AnnualizedReturn - formulas.AnnualizedReturn(benchTotal, len(daily))
	if dd := formulas.MaxDrawdownFromReturns(daily); dd != nil {
		m.MaxDrawdown = *dd
	}
	return m
}

func sharpe(m domain.BacktestMetrics, riskFreeRate float64) float64 {
	if m.Volatility <= 0 {
		return 0
	}
	return (m.AnnualizedReturn - riskFreeRate) / m.Volatility
}

// lookbackDays converts a lookback label's trading days to calendar days.
func lookbackDays(period string) int {
	tradingDays := config.BacktestTradingDays(period)
	return int(float64(tradingDays) / formulas.TradingDaysPerYear * 365)
}

func periodLabel(period string) string {
	if l, ok := periodLabels[period]; ok {
		return l
	}
	return period
}

func toPoints(dates []string, values []float64) []domain.BacktestPoint {
	out := make([]domain.BacktestPoint, len(values))
	for i, v := range values {
		out[i] = domain.BacktestPoint{Date: dates[i], Cumulative: v}
	}
	return out
}
