package repository_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaffleRepositorySoldCounter(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)
	raffle := createRaffle(t, tdb, 10)

	t.Run("Increment within capacity", func(t *testing.T) {
		require.NoError(t, repo.IncrementSold(ctx, raffle.ID, 8))

		got, err := repo.GetByID(ctx, raffle.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, got.SoldTickets)
	})

	t.Run("Increment beyond capacity is refused", func(t *testing.T) {
		err := repo.IncrementSold(ctx, raffle.ID, 3)
		assert.ErrorIs(t, err, errs.ErrInsufficientTicketsAvailable)

		got, _ := repo.GetByID(ctx, raffle.ID)
		assert.Equal(t, 8, got.SoldTickets)
	})

	t.Run("Increment unknown raffle", func(t *testing.T) {
		assert.ErrorIs(t, repo.IncrementSold(ctx, 9999, 1), errs.ErrRaffleNotFound)
	})

	t.Run("Decrement clamps at zero", func(t *testing.T) {
		require.NoError(t, repo.DecrementSold(ctx, raffle.ID, 20))

		got, _ := repo.GetByID(ctx, raffle.ID)
		assert.Equal(t, 0, got.SoldTickets)
	})
}

func TestRaffleRepositoryUpdateAndQueries(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)

	first := createRaffle(t, tdb, 10)
	second := createRaffle(t, tdb, 20)

	second.Title = "Renamed"
	require.NoError(t, second.TransitionTo(entity.RafflePaused, testNow))
	require.NoError(t, repo.Update(ctx, second))

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, entity.RafflePaused, got.State)

	latest, err := repo.LatestActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, latest.ID)

	page, err := repo.List(ctx, persistence.RaffleFilter{State: entity.RafflePaused}, entity.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, int64(1), stats.Paused)

	missing := *second
	missing.ID = 4242
	assert.ErrorIs(t, repo.Update(ctx, &missing), errs.ErrRaffleNotFound)

	_, err = repo.GetByID(ctx, 4242)
	assert.ErrorIs(t, err, errs.ErrRaffleNotFound)
}
