package retry

import (
	"math"
	"math/rand"
	"time"
)

// Strategy decides how long to wait before each retry.
type Strategy interface {
	// NextDelay returns the wait before retry number attempt (0-based).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the retry limit; 0 disables retries and a
	// negative value retries until the context ends.
	MaxAttempts() int
}

// ExponentialBackoff grows the delay by a constant factor per attempt,
// capped at a maximum, with optional symmetric jitter.
type ExponentialBackoff struct {
	initial     time.Duration
	max         time.Duration
	multiplier  float64
	jitter      float64
	random      func() float64
	maxAttempts int
}

// BackoffOption configures an ExponentialBackoff.
type BackoffOption func(*ExponentialBackoff)

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.initial = d }
}

// WithMaxDelay caps the delay between retries.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *ExponentialBackoff) { b.max = d }
}

// WithMultiplier sets the growth factor.
func WithMultiplier(m float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.multiplier = m }
}

// WithJitter spreads each delay by up to ±j of its value (0 disables).
func WithJitter(j float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.jitter = j }
}

// WithRandom replaces the [0,1) random source used for jitter.
func WithRandom(f func() float64) BackoffOption {
	return func(b *ExponentialBackoff) { b.random = f }
}

// NewExponentialBackoff returns a backoff of 100ms doubling up to 30s with
// 10% jitter, adjusted by opts.
func NewExponentialBackoff(maxAttempts int, opts ...BackoffOption) *ExponentialBackoff {
	b := &ExponentialBackoff{
		initial:     100 * time.Millisecond,
		max:         30 * time.Second,
		multiplier:  2.0,
		jitter:      0.1,
		random:      rand.Float64,
		maxAttempts: maxAttempts,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay implements Strategy.
func (b *ExponentialBackoff) NextDelay(attempt int) time.Duration {
	d := float64(b.initial) * math.Pow(b.multiplier, float64(attempt))
	if d > float64(b.max) {
		d = float64(b.max)
	}
	if b.jitter > 0 {
		d *= 1 + b.jitter*(b.random()*2-1)
	}
	return time.Duration(d)
}

// MaxAttempts implements Strategy.
func (b *ExponentialBackoff) MaxAttempts() int {
	return b.maxAttempts
}
