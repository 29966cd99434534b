// Package discover runs a batch of searches and collects every country the
// search provider reports availability for.
package discover

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/fwojciec/flixsearch"
	"github.com/fwojciec/flixsearch/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultQueries are Netflix originals, which are available in most
// regions and so cover most of the catalog.
var DefaultQueries = []string{
	"unbreakable kimmy schmidt",
	"orange is the new black",
	"house of cards",
	"sense8",
	"minimalitos",
}

// DefaultConcurrency is the number of queries fetched at once.
const DefaultConcurrency = 2

// Discoverer fetches several search pages and aggregates their countries.
type Discoverer struct {
	Fetcher     flixsearch.Fetcher
	Extractor   flixsearch.Extractor
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Report is the outcome of a discovery run.
type Report struct {
	// Countries seen in any result, sorted by name.
	Countries []string
	// Unknown lists the subset of Countries missing from flixsearch.Countries.
	Unknown []string
	// Titles is the number of distinct result URLs seen.
	Titles int
	// Queries is the number of queries that were fetched and extracted.
	Queries int
	// Failed is the number of queries that could not be fetched or extracted.
	Failed int
}

type queryResult struct {
	query   string
	results []*flixsearch.Result
	err     error
}

// Discover runs every query and returns the union of the reported
// countries. DefaultQueries are used when queries is empty. An error is
// returned only when the context ends or every query fails.
func (d *Discoverer) Discover(ctx context.Context, queries []string) (*Report, error) {
	if len(queries) == 0 {
		queries = DefaultQueries
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	delays := d.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	resultCh := make(chan queryResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, query := range queries {
			g.Go(func() error {
				resultCh <- d.run(gctx, query, logger, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	seen := bloom.NewFilter(uint(len(queries)*100), 0.001)
	countries := make(map[string]struct{})
	report := &Report{}
	var lastErr error

	for res := range resultCh {
		if res.err != nil {
			report.Failed++
			lastErr = res.err
			logger.Warn("discovery query failed", "query", res.query, "err", res.err)
			continue
		}
		report.Queries++
		for _, r := range res.results {
			if !seen.Seen(r.URL) {
				report.Titles++
			}
			for _, c := range r.Countries {
				countries[c] = struct{}{}
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if report.Queries == 0 && lastErr != nil {
		return nil, fmt.Errorf("all %d discovery queries failed: %w", report.Failed, lastErr)
	}

	report.Countries = slices.Sorted(maps.Keys(countries))
	report.Unknown = []string{}
	for _, c := range report.Countries {
		if !slices.Contains(flixsearch.Countries, c) {
			report.Unknown = append(report.Unknown, c)
		}
	}

	return report, nil
}

func (d *Discoverer) run(ctx context.Context, query string, logger *slog.Logger, delays []time.Duration) queryResult {
	res := queryResult{query: query}

	html, err := FetchWithRetry(ctx, query, d.Fetcher.Fetch, logger, delays)
	if err != nil {
		res.err = err
		return res
	}

	res.results, res.err = d.Extractor.Extract(html)
	return res
}
