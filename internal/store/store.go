// Package store provides the SQLite-backed persistence used by the data
// retrieval layer: a daily-price store and a TTL cache for fetched
// snapshots and statements. The computation modules never touch it; they
// run over already-fetched in-memory data.
package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver, CGO-free
)

// Open opens (or creates) the store database and ensures the schema.
func Open(path string, log zerolog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("path", path).Msg("Store database ready")
	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS daily_prices (
			ticker TEXT NOT NULL,
			date INTEGER NOT NULL,
			open REAL NOT NULL,
			high REAL NOT NULL,
			low REAL NOT NULL,
			close REAL NOT NULL,
			volume INTEGER,
			PRIMARY KEY (ticker, date)
		);
		CREATE INDEX IF NOT EXISTS idx_daily_prices_date ON daily_prices(ticker, date);

		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expires_at INTEGER NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
