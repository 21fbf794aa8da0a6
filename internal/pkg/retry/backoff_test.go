package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetrier(maxRetries int) (*Retrier, *[]time.Duration) {
	r := New(Config{MaxRetries: maxRetries, BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, nil)
	var slept []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return ctx.Err()
	}
	return r, &slept
}

func TestRetrier_Execute(t *testing.T) {
	t.Run("succeeds after failures with capped backoff", func(t *testing.T) {
		r, slept := newTestRetrier(5)
		calls := 0

		err := r.Execute(context.Background(), "redis", func(context.Context) error {
			calls++
			if calls < 4 {
				return errors.New("connection refused")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 4, calls)
		assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, *slept)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		r, slept := newTestRetrier(2)
		cause := errors.New("connection refused")

		err := r.Execute(context.Background(), "postgres", func(context.Context) error { return cause })

		assert.ErrorIs(t, err, cause)
		assert.ErrorContains(t, err, "postgres failed after 3 attempts")
		assert.Len(t, *slept, 2)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		r, _ := newTestRetrier(3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := r.Execute(ctx, "nats", func(context.Context) error { return nil })

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestConnect(t *testing.T) {
	r, _ := newTestRetrier(1)
	attempts := 0

	client, err := Connect(context.Background(), r, "redis", func() (*string, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("not yet")
		}
		v := "connected"
		return &v, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "connected", *client)
}
