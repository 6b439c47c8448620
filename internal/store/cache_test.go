package store

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *Cache {
	t.Helper()
	db, err := Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	// One connection keeps the in-memory database alive across queries.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return NewCache(db)
}

type cachedQuote struct {
	Ticker string
	Price  float64
}

func TestCache_RoundTrip(t *testing.T) {
	c := testDB(t)

	require.NoError(t, c.Set("quote:AAPL", cachedQuote{Ticker: "AAPL", Price: 187.5}, 3600))

	var got cachedQuote
	require.NoError(t, c.Get("quote:AAPL", &got))
	assert.Equal(t, "AAPL", got.Ticker)
	assert.InDelta(t, 187.5, got.Price, 1e-12)
}

func TestCache_Miss(t *testing.T) {
	c := testDB(t)

	var got cachedQuote
	assert.ErrorIs(t, c.Get("quote:MSFT", &got), ErrCacheMiss)
}

func TestCache_Expiry(t *testing.T) {
	c := testDB(t)

	require.NoError(t, c.Set("quote:AAPL", cachedQuote{Price: 1}, -1))

	var got cachedQuote
	assert.ErrorIs(t, c.Get("quote:AAPL", &got), ErrCacheMiss, "expired entries read as misses")
}

func TestCache_Overwrite(t *testing.T) {
	c := testDB(t)

	require.NoError(t, c.Set("quote:AAPL", cachedQuote{Price: 1}, 3600))
	require.NoError(t, c.Set("quote:AAPL", cachedQuote{Price: 2}, 3600))

	var got cachedQuote
	require.NoError(t, c.Get("quote:AAPL", &got))
	assert.InDelta(t, 2.0, got.Price, 1e-12)
}

func TestCache_GetOrFetch(t *testing.T) {
	c := testDB(t)

	calls := 0
	fetch := func() (any, error) {
		calls++
		return cachedQuote{Ticker: "AAPL", Price: 10}, nil
	}

	var got cachedQuote
	require.NoError(t, c.GetOrFetch("quote:AAPL", &got, 3600, fetch))
	assert.Equal(t, 1, calls)
	assert.InDelta(t, 10.0, got.Price, 1e-12)

	require.NoError(t, c.GetOrFetch("quote:AAPL", &got, 3600, fetch))
	assert.Equal(t, 1, calls, "second read comes from the cache")
}

func TestCache_GetOrFetch_ErrorPassesThrough(t *testing.T) {
	c := testDB(t)

	boom := errors.New("upstream down")
	var got cachedQuote
	err := c.GetOrFetch("quote:AAPL", &got, 3600, func() (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, c.Get("quote:AAPL", &got), ErrCacheMiss, "failures are not cached")
}

func TestCache_DeleteByPrefix(t *testing.T) {
	c := testDB(t)

	require.NoError(t, c.Set("snapshot:AAPL", cachedQuote{Price: 1}, 3600))
	require.NoError(t, c.Set("snapshot:MSFT", cachedQuote{Price: 2}, 3600))
	require.NoError(t, c.Set("prices:AAPL", cachedQuote{Price: 3}, 3600))

	require.NoError(t, c.DeleteByPrefix("snapshot:"))

	var got cachedQuote
	assert.ErrorIs(t, c.Get("snapshot:AAPL", &got), ErrCacheMiss)
	assert.ErrorIs(t, c.Get("snapshot:MSFT", &got), ErrCacheMiss)
	assert.NoError(t, c.Get("prices:AAPL", &got))
}

func TestCache_Purge(t *testing.T) {
	c := testDB(t)

	require.NoError(t, c.Set("stale", cachedQuote{Price: 1}, -10))
	require.NoError(t, c.Set("fresh", cachedQuote{Price: 2}, 3600))

	require.NoError(t, c.Purge())

	var got cachedQuote
	assert.ErrorIs(t, c.Get("stale", &got), ErrCacheMiss)
	assert.NoError(t, c.Get("fresh", &got))
}
