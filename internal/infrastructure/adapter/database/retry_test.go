package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/alert-processor/internal/infrastructure/adapter/logger"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxRetries:    attempts,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnConnectionError(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("Retries until the database answers", func(t *testing.T) {
		calls := 0
		err := RetryOnConnectionError(ctx, fastRetry(3), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnConnectionError(ctx, fastRetry(2), func(context.Context) error {
			calls++
			return errors.New("connection refused")
		}, log)

		assert.EqualError(t, err, "connection refused")
		assert.Equal(t, 2, calls)
	})

	t.Run("Does not retry other errors", func(t *testing.T) {
		calls := 0
		err := RetryOnConnectionError(ctx, fastRetry(5), func(context.Context) error {
			calls++
			return errors.New("password authentication failed")
		}, log)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		cfg := fastRetry(5)
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour

		err := RetryOnConnectionError(cctx, cfg, func(context.Context) error {
			return errors.New("connection refused")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))

	cfg.JitterFactor = 0.5
	b := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, b, 100*time.Millisecond)
	assert.LessOrEqual(t, b, 150*time.Millisecond)
}
