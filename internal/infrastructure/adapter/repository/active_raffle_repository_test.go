package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveRaffleRepository(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewActiveRaffleRepository(tdb.DB, tdb.Logger)

	first := createRaffle(t, tdb, 10)
	second := createRaffle(t, tdb, 10)

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, repo.Replace(ctx, &entity.ActiveRaffle{RaffleID: first.ID, ActivatedBy: "ana", ActivatedAt: testNow}))
	require.NoError(t, repo.Replace(ctx, &entity.ActiveRaffle{RaffleID: second.ID, ActivatedBy: "luis", ActivatedAt: testNow}))

	active, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.RaffleID)
	assert.Equal(t, "luis", active.ActivatedBy)
	require.NotNil(t, active.Raffle)
	assert.Equal(t, second.Title, active.Raffle.Title)

	var rows int64
	require.NoError(t, tdb.DB.Table("active_raffles").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestActiveRaffleRepositoryConcurrentReplace(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewActiveRaffleRepository(tdb.DB, tdb.Logger)

	raffles := make([]*entity.Raffle, 5)
	for i := range raffles {
		raffles[i] = createRaffle(t, tdb, 10)
	}

	var wg sync.WaitGroup
	for _, r := range raffles {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			assert.NoError(t, repo.Replace(ctx, &entity.ActiveRaffle{RaffleID: id, ActivatedBy: "admin", ActivatedAt: testNow}))
		}(r.ID)
	}
	wg.Wait()

	var rows int64
	require.NoError(t, tdb.DB.Table("active_raffles").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	_, err := repo.Get(ctx)
	assert.NoError(t, err)
}
