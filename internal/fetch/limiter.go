package fetch

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter implements per-host rate limiting for document fetches
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new per-host rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 2
	}
	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Wait blocks until the host of rawURL has rate-limit clearance
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.getLimiter(parsed.Host).Wait(ctx)
}

// WaitWithDelay waits for clearance plus an additional delay, honoring
// robots.txt crawl-delay directives.
func (l *Limiter) WaitWithDelay(ctx context.Context, rawURL string, delay time.Duration) error {
	if err := l.Wait(ctx, rawURL); err != nil {
		return err
	}
	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil
}

func (l *Limiter) getLimiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[host]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[host] = limiter
	return limiter
}
