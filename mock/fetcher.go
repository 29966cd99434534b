package mock

import (
	"context"

	"github.com/fwojciec/flixsearch"
)

var _ flixsearch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of flixsearch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, query string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, query string) (string, error) {
	return f.FetchFn(ctx, query)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ flixsearch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of flixsearch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
