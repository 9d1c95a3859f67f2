package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/fanloop/fanloop/internal/pkg/logger"
)

// Func is an operation that may be attempted more than once.
type Func func(ctx context.Context) error

// Config controls backoff behaviour for a Retrier.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	// Retryable classifies errors. A nil Retryable retries everything.
	Retryable func(error) bool
}

// DefaultConfig returns settings suited to short outbound HTTP calls.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs operations with exponential backoff between attempts.
type Retrier struct {
	config Config
}

func New(config Config) *Retrier {
	if config.Multiplier <= 1 {
		config.Multiplier = 2.0
	}
	return &Retrier{config: config}
}

// Execute runs fn until it succeeds, the error is classified as
// permanent, the attempts are exhausted, or ctx is cancelled.
func (r *Retrier) Execute(ctx context.Context, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Operation succeeded after retry",
					logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.Retryable != nil && !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delayFor(attempt)
		logger.Debug("Operation failed, backing off",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delayFor(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		// Up to 25% randomisation so parallel callers do not sync up.
		delay += delay * 0.25 * rand.Float64()
	}
	return time.Duration(delay)
}
