package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func fastRetry(max int) RetryConfig {
	return RetryConfig{MaxRetries: max, RetryInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond}
}

func TestRetryOnTransientError(t *testing.T) {
	log := logger.NewNoopLogger()

	t.Run("Succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			if calls < 3 {
				return errors.New("connection reset by peer")
			}
			return nil
		}, log)

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops on permanent error", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(5), func() error {
			calls++
			return errs.ErrNumberUnavailable
		}, log)

		assert.ErrorIs(t, err, errs.ErrNumberUnavailable)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(context.Background(), fastRetry(3), func() error {
			calls++
			return fmt.Errorf("%w: busy", errs.ErrConcurrentUpdate)
		}, log)

		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
		assert.Equal(t, 3, calls)
	})

	t.Run("Honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Second, MaxInterval: time.Second}
		err := RetryOnTransientError(ctx, cfg, func() error {
			return errors.New("deadlock detected")
		}, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, isTransientError(errors.New("deadlock detected")))
	assert.True(t, isTransientError(errs.ErrDatabaseConnection))
	assert.False(t, isTransientError(errors.New(`duplicate key value violates unique constraint "idx_tickets_code"`)))
	assert.False(t, isTransientError(nil))
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))
}

func TestExtractQueryMetadata(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(" select * from tickets"))
	assert.Equal(t, "tickets", extractTableName(`SELECT * FROM "tickets" WHERE id = 1`))
	assert.Equal(t, "raffles", extractTableName(`UPDATE "raffles" SET sold_tickets = sold_tickets + 1`))
	assert.Equal(t, "winners", extractTableName(`INSERT INTO "winners" ("raffle_id") VALUES (1)`))
	assert.Empty(t, extractTableName("BEGIN"))
}

func TestHealthCheck(t *testing.T) {
	tdb := NewTestDB(t)

	status := HealthCheck(context.Background(), tdb.DB, tdb.TimeProvider)
	assert.True(t, status.Healthy)
	assert.Equal(t, DriverSQLite, status.Driver)
	assert.Equal(t, 1, status.Pool.MaxOpenConnections)
}
