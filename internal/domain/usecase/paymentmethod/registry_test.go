package paymentmethod_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/paymentmethod"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/time"
	mockpersistence "github.com/amirhossein-jamali/raffle-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var stored = []entity.PaymentMethod{
	{Code: "zelle", Name: "Zelle", Active: true, RequiresProof: true},
	{Code: "cash", Name: "Cash", Active: true},
}

func TestRegistry_ListActiveMethods(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Caches until the TTL expires", func(t *testing.T) {
		repo := mockpersistence.NewMockPaymentMethodRepository(t)
		clock := timeprovider.NewFixedTimeProvider(start)
		reg := paymentmethod.NewRegistry(repo, clock, logger.NewNoopLogger(), time.Minute)

		repo.EXPECT().ListActive(mock.Anything).Return(stored, nil).Once()
		set, err := reg.ListActiveMethods(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())

		clock.Advance(59 * time.Second)
		_, err = reg.ListActiveMethods(ctx)
		require.NoError(t, err)

		repo.EXPECT().ListActive(mock.Anything).Return(stored[:1], nil).Once()
		clock.Advance(2 * time.Second)
		set, err = reg.ListActiveMethods(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, set.Len())
	})

	t.Run("Serves the stale snapshot when a refresh fails", func(t *testing.T) {
		repo := mockpersistence.NewMockPaymentMethodRepository(t)
		clock := timeprovider.NewFixedTimeProvider(start)
		reg := paymentmethod.NewRegistry(repo, clock, logger.NewNoopLogger(), time.Minute)

		repo.EXPECT().ListActive(mock.Anything).Return(stored, nil).Once()
		_, err := reg.ListActiveMethods(ctx)
		require.NoError(t, err)

		clock.Advance(time.Hour)
		repo.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("db down")).Once()
		set, err := reg.ListActiveMethods(ctx)
		require.NoError(t, err)
		_, ok := set.Find("zelle")
		assert.True(t, ok)

		repo.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("db down")).Once()
		err = reg.Refresh(ctx)
		assert.ErrorIs(t, err, errs.ErrPaymentMethodsUnavailable)
	})

	t.Run("Never loaded is an error", func(t *testing.T) {
		repo := mockpersistence.NewMockPaymentMethodRepository(t)
		reg := paymentmethod.NewRegistry(repo, timeprovider.NewFixedTimeProvider(start), logger.NewNoopLogger(), 0)

		repo.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("db down")).Once()
		_, err := reg.ListActiveMethods(ctx)
		assert.ErrorIs(t, err, errs.ErrPaymentMethodsUnavailable)
	})

	t.Run("Invalidate forces a reload", func(t *testing.T) {
		repo := mockpersistence.NewMockPaymentMethodRepository(t)
		reg := paymentmethod.NewRegistry(repo, timeprovider.NewFixedTimeProvider(start), logger.NewNoopLogger(), time.Hour)

		repo.EXPECT().ListActive(mock.Anything).Return(stored, nil).Twice()
		require.NoError(t, reg.Refresh(ctx))
		_, err := reg.ListActiveMethods(ctx)
		require.NoError(t, err)

		reg.Invalidate()
		_, err = reg.ListActiveMethods(ctx)
		require.NoError(t, err)
	})

	t.Run("Concurrent readers share one reload", func(t *testing.T) {
		repo := mockpersistence.NewMockPaymentMethodRepository(t)
		reg := paymentmethod.NewRegistry(repo, timeprovider.NewRealTimeProvider(), logger.NewNoopLogger(), time.Hour)

		repo.EXPECT().ListActive(mock.Anything).
			RunAndReturn(func(context.Context) ([]entity.PaymentMethod, error) {
				time.Sleep(10 * time.Millisecond)
				return stored, nil
			}).Once()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				set, err := reg.ListActiveMethods(ctx)
				assert.NoError(t, err)
				assert.Equal(t, 2, set.Len())
			}()
		}
		wg.Wait()
	})
}
