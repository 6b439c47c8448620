package portfolio

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// Method selects an allocation strategy.
type Method string

const (
	MethodEqualWeight        Method = "Equal Weight"
	MethodInverseVolatility  Method = "Inverse Volatility"
	MethodMaxDiversification Method = "Max Diversification"
)

// Options configures one portfolio construction run.
type Options struct {
	Market           config.Market
	RiskTolerance    config.RiskTolerance
	Method           Method
	InvestmentAmount float64
}

// Constructor turns screened names plus price histories into an allocated
// portfolio.
type Constructor struct {
	log zerolog.Logger
}

// NewConstructor creates a portfolio constructor.
func NewConstructor(log zerolog.Logger) *Constructor {
	return &Constructor{
		log: log.With().Str("module", "portfolio").Logger(),
	}
}

// Build allocates over the screened names that have usable price history.
// histories is keyed by ticker; names without an entry (or with too little
// history) are silently excluded before the two-ticker minimum is checked.
// Unknown methods fall back to equal weight.
func (c *Constructor) Build(stocks []domain.ScreenedStock, histories map[string]domain.PriceHistory, opts Options) (*domain.Portfolio, error) {
	if len(stocks) < 2 {
		return nil, ErrTooFewTickers
	}

	ordered := make([]domain.PriceHistory, 0, len(stocks))
	for _, s := range stocks {
		if h, ok := histories[s.Ticker]; ok {
			h.Ticker = s.Ticker
			ordered = append(ordered, h)
		}
	}

	matrix, err := BuildReturnsMatrix(ordered)
	if err != nil {
		return nil, fmt.Errorf("building returns matrix: %w", err)
	}

	cov := matrix.AnnualizedCovariance()

	var weights []float64
	switch opts.Method {
	case MethodInverseVolatility:
		weights = InverseVolatility(cov)
	case MethodMaxDiversification:
		weights = MaxDiversification(cov)
	default:
		weights = EqualWeight(matrix.NumAssets())
	}

	maxWeight := config.ConcentrationLimit(opts.RiskTolerance)
	weights = ApplyConcentrationCap(weights, maxWeight)

	byTicker := make(map[string]domain.ScreenedStock, len(stocks))
	for _, s := range stocks {
		byTicker[s.Ticker] = s
	}

	allocations := make([]domain.Allocation, matrix.NumAssets())
	for i, ticker := range matrix.Tickers {
		a := domain.Allocation{
			Ticker: ticker,
			Weight: weights[i],
			Amount: weights[i] * opts.InvestmentAmount,
		}
		if s, ok := byTicker[ticker]; ok {
			a.Name = s.Name
			a.ROIC = s.Metrics.ROIC
			score := s.ValueScore
			a.ValueScore = &score
		}
		allocations[i] = a
	}
	sort.SliceStable(allocations, func(i, j int) bool {
		return allocations[i].Weight > allocations[j].Weight
	})

	c.log.Info().
		Str("method", string(opts.Method)).
		Int("assets", matrix.NumAssets()).
		Float64("max_weight", maxWeight).
		Msg("Portfolio constructed")

	return &domain.Portfolio{
		Allocations:  allocations,
		Metrics:      Metrics(weights, matrix, config.RiskFreeRate(opts.Market)),
		Tickers:      matrix.Tickers,
		Correlations: matrix.CorrelationMatrix(),
	}, nil
}
