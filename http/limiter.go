package http

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/flixsearch"
	"golang.org/x/time/rate"
)

var _ flixsearch.DomainLimiter = (*DomainLimiter)(nil)

// DefaultRequestsPerSecond is the request rate used for the provider when
// no other rate is configured.
const DefaultRequestsPerSecond = 1.0

// DomainLimiter spaces out requests per host with token buckets. Hosts
// are compared case-insensitively and without a port.
type DomainLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	rps       float64
	burst     int
	overrides map[string]float64
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst allows n requests to a host before throttling starts.
// Defaults to 1.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.burst = n
		}
	}
}

// WithHostRate sets a different rate for one host.
func WithHostRate(host string, rps float64) LimiterOption {
	return func(d *DomainLimiter) {
		d.overrides[normalizeHost(host)] = rps
	}
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per
// second to each host.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limiters:  make(map[string]*rate.Limiter),
		rps:       rps,
		burst:     1,
		overrides: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(normalizeHost(domain)).Wait(ctx)
}

func (d *DomainLimiter) limiter(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	if l, ok := d.limiters[host]; ok {
		return l
	}
	rps, ok := d.overrides[host]
	if !ok {
		rps = d.rps
	}
	l := rate.NewLimiter(rate.Limit(rps), d.burst)
	d.limiters[host] = l
	return l
}

func normalizeHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return host
}
