// Package retry provides a generic retry mechanism with exponential backoff.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Config holds the retry configuration options.
type Config struct {
	// MaxAttempts is the maximum number of attempts, the first one included.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay grows after each retry.
	Multiplier float64

	// JitterFactor adds up to delay*JitterFactor of random jitter (0.0 to 1.0).
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt.
	// If nil, every error is retried.
	RetryIf func(error) bool

	// OnRetry is called before sleeping ahead of attempt+1.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// DefaultConfig provides sensible defaults for retry behavior.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// UpstreamConfig is tuned for the flight offer search: one quick retry fits inside the upstream timeout.
var UpstreamConfig = Config{
	MaxAttempts:  2,
	InitialDelay: 150 * time.Millisecond,
	MaxDelay:     1 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// Do executes fn with retry logic.
// It returns nil on success, or the last error once attempts are exhausted.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult executes fn with retry logic and returns its value.
// On failure the value from the last attempt is returned with the error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}

		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		wait := sleepTime(delay, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, lastErr, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// sleepTime adds jitter to delay and caps it at maxDelay.
func sleepTime(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	jitter := time.Duration(rand.Float64() * float64(delay) * jitterFactor)
	wait := delay + jitter
	if maxDelay > 0 && wait > maxDelay {
		wait = maxDelay
	}
	return wait
}

// WithRetryIf returns a copy of the config with the given RetryIf predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithOnRetry returns a copy of the config with the given OnRetry hook.
func (c Config) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Config {
	c.OnRetry = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given max attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of the config with the given initial delay.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}
