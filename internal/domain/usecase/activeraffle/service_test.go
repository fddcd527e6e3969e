package activeraffle_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/activeraffle"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	tdb     *database.TestDB
	service *activeraffle.Service
	raffles *repository.RaffleRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tdb := database.NewTestDB(t)
	return &fixture{
		tdb:     tdb,
		service: activeraffle.NewService(tdb.UnitOfWork(), tdb.TimeProvider, tdb.Logger),
		raffles: repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger),
	}
}

func (f *fixture) raffle(t *testing.T, title string, state entity.RaffleState, created time.Time) *entity.Raffle {
	t.Helper()
	initial := state
	if initial != entity.RafflePaused {
		initial = entity.RaffleActive
	}
	r, err := entity.NewRaffle(title, "", decimal.NewFromInt(1), "USD", 50, initial, "admin", created)
	require.NoError(t, err)
	require.NoError(t, f.raffles.Create(context.Background(), r))
	if state != initial {
		require.NoError(t, r.TransitionTo(state, created))
		require.NoError(t, f.raffles.Update(context.Background(), r))
	}
	return r
}

func TestService_GetActive(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("No raffles at all", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.GetActive(ctx)
		assert.ErrorIs(t, err, errs.ErrRaffleNotFound)
	})

	t.Run("Falls back to the newest active raffle and stores the pointer", func(t *testing.T) {
		f := newFixture(t)
		f.raffle(t, "Old", entity.RaffleActive, base)
		newest := f.raffle(t, "New", entity.RaffleActive, base.Add(time.Hour))
		f.raffle(t, "Paused", entity.RafflePaused, base.Add(2*time.Hour))

		active, err := f.service.GetActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, newest.ID, active.RaffleID)
		assert.Equal(t, activeraffle.SystemActor, active.ActivatedBy)

		stored, err := repository.NewActiveRaffleRepository(f.tdb.DB, f.tdb.Logger).Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, newest.ID, stored.RaffleID)
	})

	t.Run("Stored pointer wins over newer raffles", func(t *testing.T) {
		f := newFixture(t)
		chosen := f.raffle(t, "Chosen", entity.RaffleActive, base)
		_, err := f.service.Activate(ctx, chosen.ID, "admin-1")
		require.NoError(t, err)
		f.raffle(t, "Later", entity.RaffleActive, base.Add(time.Hour))

		active, err := f.service.GetActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, chosen.ID, active.RaffleID)
		assert.Equal(t, "admin-1", active.ActivatedBy)
		require.NotNil(t, active.Raffle)
		assert.Equal(t, "Chosen", active.Raffle.Title)
	})
}

func TestService_Activate(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Paused raffle is resumed", func(t *testing.T) {
		f := newFixture(t)
		paused := f.raffle(t, "Paused", entity.RafflePaused, base)

		active, err := f.service.Activate(ctx, paused.ID, "admin")
		require.NoError(t, err)
		assert.Equal(t, entity.RaffleActive, active.Raffle.State)

		stored, err := f.raffles.GetByID(ctx, paused.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RaffleActive, stored.State)
	})

	t.Run("Refusals", func(t *testing.T) {
		f := newFixture(t)
		finished := f.raffle(t, "Finished", entity.RaffleFinished, base)
		cancelled := f.raffle(t, "Cancelled", entity.RaffleCancelled, base)

		tests := []struct {
			name     string
			raffleID uint64
			wantErr  error
		}{
			{"Finished raffle", finished.ID, errs.ErrRaffleNotActive},
			{"Cancelled raffle", cancelled.ID, errs.ErrRaffleNotActive},
			{"Unknown raffle", 9999, errs.ErrRaffleNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.service.Activate(ctx, tt.raffleID, "admin")
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("Concurrent activations leave exactly one pointer", func(t *testing.T) {
		f := newFixture(t)
		ids := make([]uint64, 5)
		for i := range ids {
			ids[i] = f.raffle(t, "R", entity.RaffleActive, base.Add(time.Duration(i)*time.Minute)).ID
		}

		var wg sync.WaitGroup
		for _, id := range ids {
			wg.Add(1)
			go func(id uint64) {
				defer wg.Done()
				_, err := f.service.Activate(ctx, id, "admin")
				assert.NoError(t, err)
			}(id)
		}
		wg.Wait()

		var count int64
		require.NoError(t, f.tdb.DB.Table("active_raffles").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		active, err := f.service.GetActive(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, active.RaffleID)
	})
}

func TestService_DeactivateAll(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	r := f.raffle(t, "Only", entity.RaffleActive, time.Now())
	_, err := f.service.Activate(ctx, r.ID, "admin")
	require.NoError(t, err)

	require.NoError(t, f.service.DeactivateAll(ctx))
	require.NoError(t, f.service.DeactivateAll(ctx))

	var count int64
	require.NoError(t, f.tdb.DB.Table("active_raffles").Count(&count).Error)
	assert.Zero(t, count)
}
