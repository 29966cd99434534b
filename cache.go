package flixsearch

import (
	"context"
	"time"
)

// DefaultCacheTTL is how long extracted results stay fresh.
const DefaultCacheTTL = time.Hour

// ComputeFunc produces the results for a query on a cache miss.
type ComputeFunc func(ctx context.Context) ([]*Result, error)

// ResultCache memoizes extracted results per query.
type ResultCache interface {
	// GetOrCompute returns the cached results for query if they are younger
	// than the cache TTL. Otherwise it calls compute once, stores its
	// results and returns them. Compute errors are returned and nothing is
	// stored.
	GetOrCompute(ctx context.Context, query string, compute ComputeFunc) ([]*Result, error)

	// Clear removes every cached entry.
	Clear(ctx context.Context) error
}
