package backoff

import (
	"context"
	"time"
)

// Strategy returns the delay before attempt n, n starts at 0
type Strategy func(n int, start time.Duration) time.Duration

// Exponential doubles the delay on every attempt
func Exponential(n int, start time.Duration) time.Duration {
	return start << uint(n)
}

// Linear grows the delay by start on every attempt
func Linear(n int, start time.Duration) time.Duration {
	return time.Duration(n+1) * start
}

// Backoff is not safe for concurrent use
type Backoff struct {
	strategy Strategy
	start    time.Duration
	limit    time.Duration
	attempts int
}

// New creates a Backoff, a zero limit means the delay is unbounded
func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

// Next returns the delay of the coming Wait without consuming it
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.attempts, b.start)
	if b.limit > 0 && (d > b.limit || d <= 0) {
		return b.limit
	}
	return d
}

// Wait sleeps for Next, it returns ctx.Err() early when ctx is done
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next())
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		b.attempts++
		return nil
	}
}

func (b *Backoff) Attempts() int {
	return b.attempts
}

func (b *Backoff) Reset() {
	b.attempts = 0
}
