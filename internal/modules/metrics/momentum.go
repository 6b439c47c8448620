package metrics

import (
	"github.com/IamAdiPra/Stock-Project/internal/config"
	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/pkg/formulas"
)

// SMA crossover points. Awarded per satisfied condition, scaled to 0-100
// over whichever conditions had enough history to evaluate.
const (
	smaShortPoints = 30 // price above 50-day SMA
	smaLongPoints  = 30 // price above 200-day SMA
	smaCrossPoints = 40 // 50-day SMA above 200-day SMA
)

// MACD histogram band: +-2% of price maps linearly onto 0-100.
const macdBand = 0.02

// MomentumScore blends RSI, MACD and SMA-crossover signals into a 0-100
// score. Sub-signals without enough price history are dropped and the
// remaining weights renormalized; the composite is nil when no sub-signal
// is computable. price is the current price used for MACD normalization
// and SMA comparisons; when nil the last close is used.
func MomentumScore(closes []float64, price *float64) domain.Momentum {
	var m domain.Momentum

	refPrice := 0.0
	if price != nil {
		refPrice = *price
	} else if len(closes) > 0 {
		refPrice = closes[len(closes)-1]
	}

	m.RSI = formulas.RSI(closes, formulas.RSIPeriod)
	if m.RSI != nil {
		s := rsiSweetSpotScore(*m.RSI)
		m.RSIScore = &s
	}
	m.MACDScore = macdScore(closes, refPrice)
	m.SMAScore = smaScore(closes, refPrice)

	type weighted struct {
		score  *float64
		weight float64
	}
	parts := []weighted{
		{m.RSIScore, config.MomentumRSIWeight},
		{m.MACDScore, config.MomentumMACDWeight},
		{m.SMAScore, config.MomentumSMAWeight},
	}

	var sum, weightSum float64
	for _, p := range parts {
		if p.score == nil {
			continue
		}
		sum += *p.score * p.weight
		weightSum += p.weight
	}
	if weightSum > 0 {
		composite := sum / weightSum
		m.Composite = &composite
	}
	return m
}

// rsiSweetSpotScore rewards the recovery zone rather than raw strength:
// oversold names score modestly, the 40-55 band scores fully, overbought
// names score zero.
//
//	RSI <= 20: 20
//	20-40:     20 -> 100 linear
//	40-55:     100
//	55-80:     100 -> 0 linear
//	> 80:      0
func rsiSweetSpotScore(rsi float64) float64 {
	switch {
	case rsi <= 20:
		return 20
	case rsi < 40:
		return 20 + (rsi-20)/20*80
	case rsi <= 55:
		return 100
	case rsi < 80:
		return 100 - (rsi-55)/25*100
	default:
		return 0
	}
}

// macdScore normalizes the MACD histogram to price and maps +-macdBand
// onto 0-100.
func macdScore(closes []float64, price float64) *float64 {
	if price <= 0 {
		return nil
	}
	hist := formulas.MACDHistogram(closes)
	if hist == nil {
		return nil
	}

	norm := *hist / price
	score := (norm + macdBand) / (2 * macdBand) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return &score
}

// smaScore awards crossover points over whichever SMA terms have enough
// history, scaled to 0-100.
func smaScore(closes []float64, price float64) *float64 {
	if price <= 0 {
		return nil
	}

	sma50 := formulas.SMA(closes, formulas.SMAShort)
	sma200 := formulas.SMA(closes, formulas.SMALong)

	var earned, available float64
	if sma50 != nil {
		available += smaShortPoints
		if price > *sma50 {
			earned += smaShortPoints
		}
	}
	if sma200 != nil {
		available += smaLongPoints
		if price > *sma200 {
			earned += smaLongPoints
		}
	}
	if sma50 != nil && sma200 != nil {
		available += smaCrossPoints
		if *sma50 > *sma200 {
			earned += smaCrossPoints
		}
	}

	if available == 0 {
		return nil
	}
	score := earned / available * 100
	return &score
}
