package crawl

import (
	"context"
	"sync"
	"time"

	flat "github.com/Ryan-Knowles/make-it-flat"
	"golang.org/x/time/rate"
)

var _ flat.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter provides per-domain rate limiting using token buckets.
// Each domain gets its own limiter with a burst of 1, so the first
// request to a domain proceeds immediately and subsequent requests are
// spaced by the configured interval.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified
// requests per second limit.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// NewDomainLimiterWithDelay creates a DomainLimiter that spaces
// requests to each domain by at least the given delay.
// A zero or negative delay disables limiting.
func NewDomainLimiterWithDelay(delay time.Duration) *DomainLimiter {
	if delay <= 0 {
		return NewDomainLimiter(float64(rate.Inf))
	}
	return NewDomainLimiter(1.0 / delay.Seconds())
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
