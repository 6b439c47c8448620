package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// PriceDB stores daily OHLCV observations per ticker. Dates are persisted
// as UTC Unix timestamps and exposed as YYYY-MM-DD strings, so exchange
// timezones never leak into comparisons.
type PriceDB struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewPriceDB creates a daily-price accessor.
func NewPriceDB(db *sql.DB, log zerolog.Logger) *PriceDB {
	return &PriceDB{
		db:  db,
		log: log.With().Str("component", "price_db").Logger(),
	}
}

// SaveHistory upserts a ticker's daily price points.
func (p *PriceDB) SaveHistory(h domain.PriceHistory) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO daily_prices (ticker, date, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ticker, date) DO UPDATE SET
			open = excluded.open,
			high = excluded.high,
			low = excluded.low,
			close = excluded.close,
			volume = excluded.volume
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, pt := range h.Points {
		t, err := time.ParseInLocation("2006-01-02", pt.Date, time.UTC)
		if err != nil {
			return fmt.Errorf("bad price date %q: %w", pt.Date, err)
		}
		var volume any
		if pt.Volume != nil {
			volume = *pt.Volume
		}
		if _, err := stmt.Exec(h.Ticker, t.Unix(), pt.Open, pt.High, pt.Low, pt.Close, volume); err != nil {
			return fmt.Errorf("failed to upsert daily price: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit daily prices: %w", err)
	}

	p.log.Debug().Str("ticker", h.Ticker).Int("points", len(h.Points)).Msg("Saved price history")
	return nil
}

// History fetches a ticker's full daily series, ascending by date.
func (p *PriceDB) History(ticker string) (domain.PriceHistory, error) {
	return p.query(ticker, `
		SELECT date, open, high, low, close, volume
		FROM daily_prices
		WHERE ticker = ?
		ORDER BY date ASC
	`, ticker)
}

// HistorySince fetches a ticker's daily series from the cutoff date on,
// ascending.
func (p *PriceDB) HistorySince(ticker string, since time.Time) (domain.PriceHistory, error) {
	return p.query(ticker, `
		SELECT date, open, high, low, close, volume
		FROM daily_prices
		WHERE ticker = ? AND date >= ?
		ORDER BY date ASC
	`, ticker, since.UTC().Unix())
}

func (p *PriceDB) query(ticker, q string, args ...any) (domain.PriceHistory, error) {
	h := domain.PriceHistory{Ticker: ticker}

	rows, err := p.db.Query(q, args...)
	if err != nil {
		return h, fmt.Errorf("failed to query daily prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pt domain.PricePoint
		var dateUnix int64
		var volume sql.NullInt64

		if err := rows.Scan(&dateUnix, &pt.Open, &pt.High, &pt.Low, &pt.Close, &volume); err != nil {
			return h, fmt.Errorf("failed to scan daily price: %w", err)
		}

		pt.Date = time.Unix(dateUnix, 0).UTC().Format("2006-01-02")
		if volume.Valid {
			pt.Volume = &volume.Int64
		}
		h.Points = append(h.Points, pt)
	}
	if err := rows.Err(); err != nil {
		return h, fmt.Errorf("error iterating daily prices: %w", err)
	}

	return h, nil
}
