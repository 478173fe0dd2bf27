// Package ratelimit spaces out calls to the news search endpoint so a full
// taxonomy run does not hammer it with back-to-back requests.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Throttle enforces a minimum interval between consecutive calls.
// A zero interval disables waiting entirely.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	waits    int64
}

func New(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous call. Returns early with the context error if ctx is cancelled.
func (t *Throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	var sleep time.Duration
	if t.interval > 0 && !t.last.IsZero() {
		if elapsed := time.Since(t.last); elapsed < t.interval {
			sleep = t.interval - elapsed
		}
	}
	if sleep > 0 {
		t.waits++
	}
	t.mu.Unlock()

	if sleep > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
	}

	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
	return nil
}

// Waits reports how many calls actually had to sleep.
func (t *Throttle) Waits() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.waits
}
