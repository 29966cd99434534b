package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/flixsearch"
)

// Ensure LoggingResultCache implements flixsearch.ResultCache.
var _ flixsearch.ResultCache = (*LoggingResultCache)(nil)

// LoggingResultCache wraps a ResultCache and logs hits and misses.
type LoggingResultCache struct {
	next   flixsearch.ResultCache
	logger *slog.Logger
}

// NewLoggingResultCache creates a new LoggingResultCache.
func NewLoggingResultCache(next flixsearch.ResultCache, logger *slog.Logger) *LoggingResultCache {
	return &LoggingResultCache{next: next, logger: logger}
}

// GetOrCompute delegates to the wrapped cache. A call is reported as a
// hit when compute was not invoked.
func (c *LoggingResultCache) GetOrCompute(ctx context.Context, query string, compute flixsearch.ComputeFunc) (results []*flixsearch.Result, err error) {
	hit := true
	defer func(begin time.Time) {
		c.logger.Info("cache",
			"query", query,
			"key", flixsearch.Fingerprint(query),
			"hit", hit,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.GetOrCompute(ctx, query, func(ctx context.Context) ([]*flixsearch.Result, error) {
		hit = false
		return compute(ctx)
	})
}

// Clear delegates to the wrapped cache.
func (c *LoggingResultCache) Clear(ctx context.Context) (err error) {
	defer func() {
		c.logger.Info("cache clear", "err", err)
	}()
	return c.next.Clear(ctx)
}
