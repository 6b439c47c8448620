// Package portfolio builds risk-aware allocations over screened names from
// their daily price histories.
package portfolio

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
	"github.com/IamAdiPra/Stock-Project/pkg/formulas"
)

// minObservations is the minimum usable history: per ticker before
// alignment, and for the aligned date set afterwards.
const minObservations = 20

var (
	// ErrTooFewTickers means fewer than two names had usable price
	// history, so no multi-asset construction is possible.
	ErrTooFewTickers = errors.New("portfolio: need at least two tickers with usable price history")

	// ErrInsufficientHistory means the tickers share too few common
	// trading days.
	ErrInsufficientHistory = errors.New("portfolio: fewer than 20 aligned observations")
)

// ReturnsMatrix is an aligned daily-return table: one row per trading day,
// one column per ticker.
type ReturnsMatrix struct {
	Tickers []string
	Dates   []string    // date of each return row
	Data    [][]float64 // rows = dates, cols = tickers
}

// BuildReturnsMatrix aligns the given price histories on their common
// trading days and differences them into daily returns. Histories with too
// few observations are dropped up front; the survivors must share at least
// minObservations dates and number at least two.
func BuildReturnsMatrix(histories []domain.PriceHistory) (*ReturnsMatrix, error) {
	var usable []domain.PriceHistory
	for _, h := range histories {
		if h.Len() > minObservations {
			usable = append(usable, h)
		}
	}
	if len(usable) < 2 {
		return nil, ErrTooFewTickers
	}

	closeByDate := make([]map[string]float64, len(usable))
	for i, h := range usable {
		m := make(map[string]float64, h.Len())
		for _, p := range h.Points {
			m[p.Date] = p.Close
		}
		closeByDate[i] = m
	}

	// Dates common to every ticker, in the first ticker's ascending order.
	var dates []string
	for _, p := range usable[0].Points {
		shared := true
		for _, m := range closeByDate[1:] {
			if _, ok := m[p.Date]; !ok {
				shared = false
				break
			}
		}
		if shared {
			dates = append(dates, p.Date)
		}
	}
	if len(dates) < minObservations {
		return nil, ErrInsufficientHistory
	}

	tickers := make([]string, len(usable))
	for i, h := range usable {
		tickers[i] = h.Ticker
	}

	data := make([][]float64, 0, len(dates)-1)
	for r := 1; r < len(dates); r++ {
		row := make([]float64, len(usable))
		for c, m := range closeByDate {
			prev := m[dates[r-1]]
			if prev != 0 {
				row[c] = (m[dates[r]] - prev) / prev
			}
		}
		data = append(data, row)
	}

	return &ReturnsMatrix{
		Tickers: tickers,
		Dates:   dates[1:],
		Data:    data,
	}, nil
}

// NumAssets returns the column count.
func (m *ReturnsMatrix) NumAssets() int { return len(m.Tickers) }

// PortfolioSeries collapses the matrix into one weighted daily-return
// series.
func (m *ReturnsMatrix) PortfolioSeries(weights []float64) []float64 {
	out := make([]float64, len(m.Data))
	for r, row := range m.Data {
		var sum float64
		for c, ret := range row {
			sum += weights[c] * ret
		}
		out[r] = sum
	}
	return out
}

// dense copies the matrix into gonum form.
func (m *ReturnsMatrix) dense() *mat.Dense {
	d := mat.NewDense(len(m.Data), len(m.Tickers), nil)
	for r, row := range m.Data {
		d.SetRow(r, row)
	}
	return d
}

// AnnualizedCovariance returns the sample covariance of the daily returns
// scaled to annual terms.
func (m *ReturnsMatrix) AnnualizedCovariance() *mat.SymDense {
	n := m.NumAssets()
	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, m.dense(), nil)

	scaled := mat.NewSymDense(n, nil)
	scaled.ScaleSym(formulas.TradingDaysPerYear, cov)
	return scaled
}

// CorrelationMatrix returns the pairwise daily-return correlations as a
// plain nested slice in ticker order.
func (m *ReturnsMatrix) CorrelationMatrix() [][]float64 {
	n := m.NumAssets()
	corr := mat.NewSymDense(n, nil)
	stat.CorrelationMatrix(corr, m.dense(), nil)

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = corr.At(i, j)
		}
	}
	return out
}
