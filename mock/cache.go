package mock

import (
	"context"

	"github.com/fwojciec/flixsearch"
)

var _ flixsearch.ResultCache = (*ResultCache)(nil)

// ResultCache is a mock implementation of flixsearch.ResultCache.
type ResultCache struct {
	GetOrComputeFn func(ctx context.Context, query string, compute flixsearch.ComputeFunc) ([]*flixsearch.Result, error)
	ClearFn        func(ctx context.Context) error
}

func (c *ResultCache) GetOrCompute(ctx context.Context, query string, compute flixsearch.ComputeFunc) ([]*flixsearch.Result, error) {
	return c.GetOrComputeFn(ctx, query, compute)
}

func (c *ResultCache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}
