// Package slog provides log/slog decorators for flixsearch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/flixsearch"
)

// Ensure LoggingFetcher implements flixsearch.Fetcher.
var _ flixsearch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   flixsearch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next flixsearch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the query, response size
// and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, query string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"query", query,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, query)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
