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

func TestTicketRepositoryUniqueness(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)
	raffle := createRaffle(t, tdb, 10)

	sellNumbers(t, repo, raffle.ID, "TXN-1", 3)

	t.Run("Same number in the same raffle", func(t *testing.T) {
		dup := entity.NewSoldTicket(raffle.ID, 3, "OTHER", sale("TXN-2"))
		err := repo.Create(ctx, dup)

		assert.ErrorIs(t, err, errs.ErrNumberUnavailable)
		var numErr *errs.NumberError
		require.ErrorAs(t, err, &numErr)
		assert.Equal(t, 3, numErr.Number)
	})

	t.Run("Same code", func(t *testing.T) {
		dup := entity.NewSoldTicket(raffle.ID, 4, "C1-3", sale("TXN-2"))
		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrTicketCodeCollision)
	})

	t.Run("Same number in another raffle", func(t *testing.T) {
		other := createRaffle(t, tdb, 10)
		ticket := entity.NewSoldTicket(other.ID, 3, "FRESH", sale("TXN-3"))
		assert.NoError(t, repo.Create(ctx, ticket))
	})
}

func TestTicketRepositoryClaimTransaction(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)
	first := createRaffle(t, tdb, 10)
	second := createRaffle(t, tdb, 10)

	require.NoError(t, repo.ClaimTransaction(ctx, first.ID, "TXN-CLAIM"))

	err := repo.ClaimTransaction(ctx, first.ID, "TXN-CLAIM")
	assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	var dup *errs.DuplicateTransactionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "TXN-CLAIM", dup.TransactionID)

	assert.ErrorIs(t, repo.ClaimTransaction(ctx, second.ID, "TXN-CLAIM"), errs.ErrDuplicateTransaction)
	assert.NoError(t, repo.ClaimTransaction(ctx, second.ID, "TXN-OTHER"))
}

func TestTicketRepositoryCancelAndResell(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)
	raffle := createRaffle(t, tdb, 10)

	tickets := sellNumbers(t, repo, raffle.ID, "TXN-1", 3, 7)

	held, err := repo.IsNumberHeld(ctx, raffle.ID, 3)
	require.NoError(t, err)
	assert.True(t, held)

	cancelID := entity.CancellationTransactionID(testNow, "TXN-1")
	for _, ticket := range tickets {
		require.NoError(t, ticket.Cancel("duplicate", "admin", cancelID, testNow))
		require.NoError(t, repo.Transition(ctx, ticket, entity.TicketSold))
	}

	occupied, err := repo.OccupiedNumbers(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Empty(t, occupied)

	sold, err := repo.FindByTransaction(ctx, "TXN-1", entity.TicketSold)
	require.NoError(t, err)
	assert.Empty(t, sold)

	cancelled, err := repo.ListCancelled(ctx, raffle.ID)
	require.NoError(t, err)
	require.Len(t, cancelled, 2)
	require.NotNil(t, cancelled[0].Cancellation)
	assert.Equal(t, "duplicate", cancelled[0].Cancellation.Reason)
	assert.Equal(t, "TXN-1", cancelled[0].Cancellation.PreviousTransactionID)
	assert.Equal(t, "Ana", cancelled[0].Cancellation.Buyer.Name)
	assert.Empty(t, cancelled[0].Buyer.Name)

	t.Run("Stale transition is refused", func(t *testing.T) {
		stale := *tickets[0]
		stale.State = entity.TicketSold
		err := repo.Transition(ctx, &stale, entity.TicketSold)
		assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})

	t.Run("Resale reuses the row", func(t *testing.T) {
		rows, err := repo.FindByNumbers(ctx, raffle.ID, []int{3})
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		require.NoError(t, row.Sell(sale("TXN-9")))
		require.NoError(t, repo.Transition(ctx, row, entity.TicketAvailable))

		again, err := repo.GetByID(ctx, tickets[0].ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TicketSold, again.State)
		assert.Equal(t, "TXN-9", again.TransactionID)
		assert.Nil(t, again.Cancellation)

		var count int64
		require.NoError(t, tdb.DB.Table("tickets").Where("raffle_id = ? AND number = ?", raffle.ID, 3).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestTicketRepositoryListings(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger)
	raffle := createRaffle(t, tdb, 20)

	verified := sellNumbers(t, repo, raffle.ID, "TXN-A", 1, 2)
	sellNumbers(t, repo, raffle.ID, "TXN-B", 5)

	for _, ticket := range verified {
		_, err := ticket.Verify("admin", testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, ticket))
	}

	eligible, err := repo.ListEligible(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Len(t, eligible, 2)

	unverified, err := repo.ListUnverified(ctx, 0, entity.Pagination{})
	require.NoError(t, err)
	require.Equal(t, int64(1), unverified.Total)
	assert.Equal(t, 5, unverified.Items[0].Number)

	yes := true
	page, err := repo.ListByRaffle(ctx, raffle.ID, persistence.TicketFilter{Verified: &yes, City: "cara"}, entity.Pagination{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 1)

	byEmail, err := repo.ListByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 3)

	held, err := repo.CountHeld(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), held)

	exists, err := repo.TransactionExists(ctx, "TXN-B")
	require.NoError(t, err)
	assert.True(t, exists)

	taken, err := repo.CodeExists(ctx, "C1-5")
	require.NoError(t, err)
	assert.True(t, taken)
}
