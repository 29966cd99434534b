// Package http provides an HTTP-based implementation of flixsearch.Fetcher
// that retrieves search-results pages from flixsearch.io.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/flixsearch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultBaseURL is the search provider's base URL.
const DefaultBaseURL = "https://flixsearch.io"

// DefaultUserAgent identifies this client to the provider.
func DefaultUserAgent() string {
	return "flixsearch/" + flixsearch.Version + " (+https://github.com/fwojciec/flixsearch)"
}

// Ensure Fetcher implements flixsearch.Fetcher at compile time.
var _ flixsearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves search-results pages using plain HTTP GET requests.
// It never retries; retry policy belongs to the caller.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
	limiter   flixsearch.DomainLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified. Non-positive
// durations are ignored so a request can never run without a deadline.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// Timeout returns the per-request deadline applied by the fetcher.
func (f *Fetcher) Timeout() time.Duration {
	return f.timeout
}

// WithBaseURL sets the provider base URL. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter makes the fetcher wait on limiter before every request.
func WithLimiter(l flixsearch.DomainLimiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// SearchURL returns the results-page URL for query.
func (f *Fetcher) SearchURL(query string) string {
	return f.baseURL + "/search/" + url.PathEscape(query)
}

// Fetch retrieves the search-results HTML for query.
func (f *Fetcher) Fetch(ctx context.Context, query string) (string, error) {
	target := f.SearchURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", flixsearch.Errorf(flixsearch.EINVALID, "invalid search URL %q: %v", target, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL.Host); err != nil {
			return "", &flixsearch.FetchError{Kind: flixsearch.FetchTransport, URL: target, Err: err}
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &flixsearch.FetchError{Kind: flixsearch.FetchTransport, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &flixsearch.FetchError{
			Kind:       flixsearch.FetchHTTPStatus,
			StatusCode: resp.StatusCode,
			URL:        target,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &flixsearch.FetchError{Kind: flixsearch.FetchTransport, URL: target, Err: err}
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
