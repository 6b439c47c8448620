package formulas

import (
	"math"

	"github.com/markcheno/go-talib"
)

// Standard technical-indicator windows.
const (
	RSIPeriod     = 14
	MACDFast      = 12
	MACDSlow      = 26
	MACDSignal    = 9
	SMAShort      = 50
	SMALong       = 200
	BollingerDays = 20
)

// RSI returns the current Wilder-smoothed Relative Strength Index over the
// given period, or nil with fewer than period+1 closes.
func RSI(closes []float64, period int) *float64 {
	if len(closes) < period+1 {
		return nil
	}

	rsi := talib.Rsi(closes, period)
	if len(rsi) == 0 {
		return nil
	}
	last := rsi[len(rsi)-1]
	if math.IsNaN(last) {
		return nil
	}
	return &last
}

// MACDHistogram returns the current MACD histogram value (MACD line minus
// signal line) for the standard 12/26/9 configuration, or nil when the
// series is shorter than slow+signal periods.
func MACDHistogram(closes []float64) *float64 {
	if len(closes) < MACDSlow+MACDSignal {
		return nil
	}

	_, _, hist := talib.Macd(closes, MACDFast, MACDSlow, MACDSignal)
	if len(hist) == 0 {
		return nil
	}
	last := hist[len(hist)-1]
	if math.IsNaN(last) {
		return nil
	}
	return &last
}

// SMA returns the current simple moving average over the given window, or
// nil with insufficient history.
func SMA(closes []float64, window int) *float64 {
	if len(closes) < window {
		return nil
	}

	sma := talib.Sma(closes, window)
	if len(sma) == 0 {
		return nil
	}
	last := sma[len(sma)-1]
	if math.IsNaN(last) {
		return nil
	}
	return &last
}

// BollingerPoint is one observation of a Bollinger-band overlay.
type BollingerPoint struct {
	Close float64
	SMA   float64
	Upper float64
	Lower float64
}

// BollingerBands computes a 20-day SMA with bands at +-numStd standard
// deviations. The result is aligned with the input; the first window-1
// points carry NaN band values.
func BollingerBands(closes []float64, window int, numStd float64) []BollingerPoint {
	out := make([]BollingerPoint, len(closes))
	for i := range closes {
		out[i] = BollingerPoint{
			Close: closes[i],
			SMA:   math.NaN(),
			Upper: math.NaN(),
			Lower: math.NaN(),
		}
		if i+1 < window {
			continue
		}
		win := closes[i+1-window : i+1]
		m := Mean(win)
		sd := StdDev(win)
		out[i].SMA = m
		out[i].Upper = m + numStd*sd
		out[i].Lower = m - numStd*sd
	}
	return out
}
