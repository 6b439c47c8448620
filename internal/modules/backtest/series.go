package backtest

import (
	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// alignedSeries is a set of per-ticker close series restricted to their
// shared trading days, ascending.
type alignedSeries struct {
	tickers []string
	dates   []string
	closes  [][]float64 // rows = dates, cols = tickers
}

// sliceFrom keeps the history's points on or after the start date. Dates
// are normalized YYYY-MM-DD in UTC, so the comparison is lexicographic
// regardless of the source exchange's timezone.
func sliceFrom(h domain.PriceHistory, start string) []domain.PricePoint {
	for i, p := range h.Points {
		if p.Date >= start {
			return h.Points[i:]
		}
	}
	return nil
}

// align intersects the given sliced histories on their common dates.
func align(tickers []string, sliced [][]domain.PricePoint) alignedSeries {
	byDate := make([]map[string]float64, len(sliced))
	for i, pts := range sliced {
		m := make(map[string]float64, len(pts))
		for _, p := range pts {
			m[p.Date] = p.Close
		}
		byDate[i] = m
	}

	var dates []string
	for _, p := range sliced[0] {
		shared := true
		for _, m := range byDate[1:] {
			if _, ok := m[p.Date]; !ok {
				shared = false
				break
			}
		}
		if shared {
			dates = append(dates, p.Date)
		}
	}

	closes := make([][]float64, len(dates))
	for r, d := range dates {
		row := make([]float64, len(sliced))
		for c, m := range byDate {
			row[c] = m[d]
		}
		closes[r] = row
	}

	return alignedSeries{tickers: tickers, dates: dates, closes: closes}
}

// totalReturns computes each ticker's total return over the aligned window.
func (a alignedSeries) totalReturns() map[string]float64 {
	out := make(map[string]float64, len(a.tickers))
	if len(a.closes) == 0 {
		return out
	}
	first := a.closes[0]
	last := a.closes[len(a.closes)-1]
	for i, t := range a.tickers {
		if first[i] > 0 {
			out[t] = (last[i] - first[i]) / first[i]
		}
	}
	return out
}

// equalWeightReturns collapses the aligned closes into the mean daily
// return across tickers.
func (a alignedSeries) equalWeightReturns() []float64 {
	if len(a.closes) < 2 {
		return nil
	}
	out := make([]float64, len(a.closes)-1)
	for r := 1; r < len(a.closes); r++ {
		var sum float64
		for c := range a.tickers {
			prev := a.closes[r-1][c]
			if prev != 0 {
				sum += (a.closes[r][c] - prev) / prev
			}
		}
		out[r-1] = sum / float64(len(a.tickers))
	}
	return out
}
