package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/flixsearch"
	"golang.org/x/sync/singleflight"
)

// Compile-time interface verification.
var _ flixsearch.ResultCache = (*ResultCache)(nil)

// ResultCache implements flixsearch.ResultCache using SQLite.
// Entries are keyed by the query fingerprint and expire lazily on read.
// Writes replace the whole entry, so concurrent runs at worst recompute.
type ResultCache struct {
	db    *DB
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group
}

// CacheOption configures a ResultCache.
type CacheOption func(*ResultCache)

// WithTTL sets how long entries stay fresh.
// Defaults to flixsearch.DefaultCacheTTL (1h) if not specified.
func WithTTL(d time.Duration) CacheOption {
	return func(c *ResultCache) {
		c.ttl = d
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *ResultCache) {
		c.now = now
	}
}

// NewResultCache creates a new ResultCache.
func NewResultCache(db *DB, opts ...CacheOption) *ResultCache {
	c := &ResultCache{
		db:  db,
		ttl: flixsearch.DefaultCacheTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns fresh cached results for query or computes,
// stores and returns new ones. Concurrent callers asking for the same
// query share a single computation.
func (c *ResultCache) GetOrCompute(ctx context.Context, query string, compute flixsearch.ComputeFunc) ([]*flixsearch.Result, error) {
	key := flixsearch.Fingerprint(query)

	results, ok, err := c.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return results, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		results, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.store(ctx, key, query, results); err != nil {
			return nil, err
		}
		return results, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*flixsearch.Result), nil
}

// Clear removes every cached entry.
func (c *ResultCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// lookup returns the entry for key if it exists, is fresh and intact.
func (c *ResultCache) lookup(ctx context.Context, key string) ([]*flixsearch.Result, bool, error) {
	var payload, checksum, createdAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT payload, checksum, created_at
		FROM results
		WHERE key = ?
	`, key).Scan(&payload, &checksum, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	created, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, false, nil
	}
	if c.now().Sub(created) >= c.ttl {
		return nil, false, nil
	}

	// A damaged entry is treated as a miss and rewritten.
	if checksum != hashPayload(payload) {
		return nil, false, nil
	}
	var results []*flixsearch.Result
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		return nil, false, nil
	}
	if results == nil {
		results = []*flixsearch.Result{}
	}
	return results, true, nil
}

func (c *ResultCache) store(ctx context.Context, key, query string, results []*flixsearch.Result) error {
	if results == nil {
		results = []*flixsearch.Result{}
	}
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO results (key, query, payload, checksum, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, key, query, string(payload), hashPayload(string(payload)), c.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// hashPayload computes the xxHash of payload as a hex string.
func hashPayload(payload string) string {
	return strconv.FormatUint(xxhash.Sum64String(payload), 16)
}
