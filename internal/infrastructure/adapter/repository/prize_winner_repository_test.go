package repository_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrizeRepository(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewPrizeRepository(tdb.DB, tdb.Logger)
	raffle := createRaffle(t, tdb, 10)

	car, err := entity.NewPrize(raffle.ID, "Car", "", 1, decimal.NewNullDecimal(decimal.NewFromInt(9000)), "USD", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, car))

	tv, err := entity.NewPrize(raffle.ID, "TV", "", 2, decimal.NullDecimal{}, "", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tv))

	t.Run("Duplicate position", func(t *testing.T) {
		dup, _ := entity.NewPrize(raffle.ID, "Bike", "", 2, decimal.NullDecimal{}, "", testNow)
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicatePrizePosition)
	})

	t.Run("Lookup and listing", func(t *testing.T) {
		got, err := repo.GetByPosition(ctx, raffle.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "Car", got.Name)
		assert.True(t, got.Value.Valid)
		assert.True(t, got.Value.Decimal.Equal(decimal.NewFromInt(9000)))

		_, err = repo.GetByPosition(ctx, raffle.ID, 3)
		assert.ErrorIs(t, err, errs.ErrPrizeNotFound)

		tv.State = entity.PrizeInactive
		require.NoError(t, repo.Update(ctx, tv))

		active, err := repo.ListByRaffle(ctx, raffle.ID, false)
		require.NoError(t, err)
		assert.Len(t, active, 1)

		all, err := repo.ListByRaffle(ctx, raffle.ID, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		used, err := repo.UsedPositions(ctx, raffle.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, used)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, tv.ID))
		_, err := repo.GetByID(ctx, tv.ID)
		assert.ErrorIs(t, err, errs.ErrPrizeNotFound)
	})
}

func TestWinnerRepository(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	tickets := repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)
	repo := repository.NewWinnerRepository(tdb.DB, tdb.Logger)
	raffle := createRaffle(t, tdb, 10)

	sold := sellNumbers(t, tickets, raffle.ID, "TXN-1", 4, 9)
	prize := &entity.Prize{Name: entity.DefaultPrizeName, Position: 1}

	exists, err := repo.ExistsForRaffle(ctx, raffle.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	winners := []*entity.Winner{
		entity.NewWinner(sold[0], prize, "admin", testNow),
		entity.NewWinner(sold[1], &entity.Prize{Name: "Second", Position: 2}, "admin", testNow),
	}
	require.NoError(t, repo.CreateBatch(ctx, winners))
	assert.NotZero(t, winners[0].ID)
	assert.NotZero(t, winners[1].ID)

	t.Run("A ticket wins once", func(t *testing.T) {
		again := entity.NewWinner(sold[0], prize, "admin", testNow)
		assert.ErrorIs(t, repo.CreateBatch(ctx, []*entity.Winner{again}), errs.ErrWinnersAlreadyExist)
	})

	t.Run("Listing and delivery", func(t *testing.T) {
		list, err := repo.ListByRaffle(ctx, raffle.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 1, list[0].PrizePosition)
		assert.True(t, list[0].IsPrimary)
		assert.Equal(t, "Ana", list[0].Buyer.Name)

		w := list[1]
		w.UpdateDelivery(true, nil, "shipped", testNow)
		require.NoError(t, repo.Update(ctx, w))

		got, err := repo.GetByID(ctx, w.ID)
		require.NoError(t, err)
		assert.True(t, got.Delivered)
		assert.Equal(t, "shipped", got.DeliveryNotes)

		page, err := repo.List(ctx, entity.Pagination{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
	})
}
