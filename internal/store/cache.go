package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrCacheMiss means the key is absent or its entry has expired.
var ErrCacheMiss = errors.New("store: cache miss")

// Cache is a key-value TTL cache over the store database. Values are
// msgpack-encoded. Fetched market data gets a TTL matching its churn rate
// (fundamentals daily, prices hourly) so repeated screening runs stay
// cheap without going stale.
type Cache struct {
	db *sql.DB
}

// NewCache creates a cache over the store database.
func NewCache(db *sql.DB) *Cache {
	return &Cache{db: db}
}

// Set stores a value under key for ttl seconds.
func (c *Cache) Set(key string, value any, ttlSeconds int64) error {
	blob, err := msgpack.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}

	expiresAt := time.Now().Unix() + ttlSeconds
	_, err = c.db.Exec(`
		INSERT INTO cache (key, value, expires_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, key, blob, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Get loads the value under key into dest. Returns ErrCacheMiss when the
// key is absent or expired.
func (c *Cache) Get(key string, dest any) error {
	var blob []byte
	var expiresAt int64
	err := c.db.QueryRow("SELECT value, expires_at FROM cache WHERE key = ?", key).
		Scan(&blob, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("failed to read cache entry: %w", err)
	}

	if time.Now().Unix() >= expiresAt {
		return ErrCacheMiss
	}

	if err := msgpack.Unmarshal(blob, dest); err != nil {
		return fmt.Errorf("failed to decode cache value: %w", err)
	}
	return nil
}

// GetOrFetch loads the value under key, or on a miss calls fetch, caches
// its result for ttl seconds and loads that. Fetch errors pass through
// uncached.
func (c *Cache) GetOrFetch(key string, dest any, ttlSeconds int64, fetch func() (any, error)) error {
	if err := c.Get(key, dest); err == nil {
		return nil
	} else if !errors.Is(err, ErrCacheMiss) {
		return err
	}

	value, err := fetch()
	if err != nil {
		return err
	}
	if err := c.Set(key, value, ttlSeconds); err != nil {
		return err
	}
	return c.Get(key, dest)
}

// Delete removes a cache entry.
func (c *Cache) Delete(key string) error {
	_, err := c.db.Exec("DELETE FROM cache WHERE key = ?", key)
	return err
}

// DeleteByPrefix removes every entry whose key starts with prefix.
func (c *Cache) DeleteByPrefix(prefix string) error {
	_, err := c.db.Exec("DELETE FROM cache WHERE key LIKE ?", prefix+"%")
	return err
}

// Purge removes all expired entries.
func (c *Cache) Purge() error {
	_, err := c.db.Exec("DELETE FROM cache WHERE expires_at <= ?", time.Now().Unix())
	return err
}
