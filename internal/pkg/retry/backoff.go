package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
)

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration // upper bound for any single delay
	Multiplier float64
	Jitter     bool // adds up to 10% on top of each delay
}

// StartupConfig suits connecting to backing services while the stack boots
func StartupConfig() Config {
	return Config{
		MaxRetries: 5,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs a function with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new retrier with the given configuration
func New(config Config, l *logger.ZapLogger) *Retrier {
	if l == nil {
		l = logger.NewNop()
	}
	return &Retrier{config: config, logger: l, sleep: sleepCtx}
}

// Execute calls fn until it succeeds, attempts run out or ctx ends.
// name identifies the operation in logs.
func (r *Retrier) Execute(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			if attempt > 0 {
				r.logger.Info("Succeeded after retries",
					logger.String("operation", name),
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Warn("Attempt failed, retrying",
			logger.String("operation", name),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay),
			logger.Err(lastErr))

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", name, r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Connect retries a constructor such as database.NewRedisClient
func Connect[T any](ctx context.Context, r *Retrier, name string, dial func() (T, error)) (T, error) {
	var client T
	err := r.Execute(ctx, name, func(context.Context) error {
		c, err := dial()
		if err != nil {
			return err
		}
		client = c
		return nil
	})
	return client, err
}
