// ABOUTME: Minimum-interval rate limiting shared by all provider requests
// ABOUTME: A single Limiter instance is injected wherever requests are issued
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between consecutive requests.
// The mutex is held across the sleep so concurrent callers queue up and
// each departs at least one interval after the previous one.
type Limiter struct {
	lastRequest time.Time
	interval    time.Duration
	mu          sync.Mutex
}

// New creates a limiter with the given minimum interval between requests.
func New(interval time.Duration) *Limiter {
	return &Limiter{interval: interval}
}

// Wait blocks until at least the configured interval has elapsed since the
// previous request, then records the departure time. It returns early with
// the context error if the context is cancelled while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := time.Since(l.lastRequest)
	if elapsed < l.interval {
		timer := time.NewTimer(l.interval - elapsed)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	l.lastRequest = time.Now()
	return nil
}

// Interval returns the configured minimum spacing.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
