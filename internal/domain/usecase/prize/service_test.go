package prize_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/prize"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	tdb     *database.TestDB
	service *prize.Service
	raffle  *entity.Raffle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tdb := database.NewTestDB(t)
	r, err := entity.NewRaffle("Prize raffle", "", decimal.NewFromInt(3), "USD", 20, entity.RaffleActive, "admin", time.Now())
	require.NoError(t, err)
	require.NoError(t, repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger).Create(context.Background(), r))
	return &fixture{
		tdb:     tdb,
		service: prize.NewService(tdb.UnitOfWork(), tdb.TimeProvider, tdb.Logger),
		raffle:  r,
	}
}

func (f *fixture) soldTicket(t *testing.T, raffleID uint64, number int) *entity.Ticket {
	t.Helper()
	tk := entity.NewSoldTicket(raffleID, number, "PRZ"+string(rune('A'+number)), entity.Sale{
		TransactionID: "TXN-PRIZE",
		Buyer:         entity.Buyer{Name: "Luis", Email: "luis@example.com"},
		Price:         decimal.NewFromInt(3),
		PurchasedAt:   time.Now(),
	})
	require.NoError(t, repository.NewTicketRepository(f.tdb.DB, f.tdb.TimeProvider, f.tdb.Logger).Create(context.Background(), tk))
	return tk
}

func input(name string, position int) usecase.PrizeInput {
	return usecase.PrizeInput{Name: name, Position: position, Value: decimal.NewNullDecimal(decimal.NewFromInt(100))}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p, err := f.service.Create(ctx, f.raffle.ID, input("Motorbike", 1))
	require.NoError(t, err)
	assert.Equal(t, entity.PrizeActive, p.State)
	assert.True(t, p.IsPrimary())
	assert.Equal(t, "USD", p.Currency)

	tests := []struct {
		name     string
		raffleID uint64
		input    usecase.PrizeInput
		wantErr  error
	}{
		{"Taken position", f.raffle.ID, input("TV", 1), errs.ErrDuplicatePrizePosition},
		{"Missing name", f.raffle.ID, input("", 2), errs.ErrInvalidPrize},
		{"Zero position", f.raffle.ID, input("TV", 0), errs.ErrInvalidPrize},
		{"Unknown raffle", 555, input("TV", 2), errs.ErrRaffleNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Create(ctx, tt.raffleID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores every prize", func(t *testing.T) {
		f := newFixture(t)
		created, err := f.service.CreateBatch(ctx, f.raffle.ID, []usecase.PrizeInput{input("Car", 1), input("TV", 2), input("Phone", 3)})
		require.NoError(t, err)
		assert.Len(t, created, 3)

		listed, err := f.service.ListByRaffle(ctx, f.raffle.ID, false)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "Car", listed[0].Name)
	})

	t.Run("Repeated position in the batch", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateBatch(ctx, f.raffle.ID, []usecase.PrizeInput{input("Car", 1), input("TV", 1)})
		assert.ErrorIs(t, err, errs.ErrDuplicatePrizePosition)
	})

	t.Run("Conflict with a stored prize rolls back the batch", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Create(ctx, f.raffle.ID, input("Car", 2))
		require.NoError(t, err)

		_, err = f.service.CreateBatch(ctx, f.raffle.ID, []usecase.PrizeInput{input("TV", 1), input("Phone", 2)})
		assert.ErrorIs(t, err, errs.ErrDuplicatePrizePosition)

		listed, err := f.service.ListByRaffle(ctx, f.raffle.ID, true)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("Empty batch", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreateBatch(ctx, f.raffle.ID, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidPrize)
	})
}

func TestService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p, err := f.service.Create(ctx, f.raffle.ID, input("Car", 1))
	require.NoError(t, err)

	updated, err := f.service.Update(ctx, p.ID, usecase.PrizeInput{Name: "Red car", State: entity.PrizeInactive})
	require.NoError(t, err)
	assert.Equal(t, "Red car", updated.Name)
	assert.Equal(t, entity.PrizeInactive, updated.State)

	active, err := f.service.ListByRaffle(ctx, f.raffle.ID, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = f.service.Update(ctx, p.ID, usecase.PrizeInput{State: entity.PrizeAssigned})
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)

	_, err = f.service.Update(ctx, p.ID, usecase.PrizeInput{State: "lost"})
	assert.ErrorIs(t, err, errs.ErrInvalidPrize)

	require.NoError(t, f.service.Delete(ctx, p.ID))
	_, err = f.service.Get(ctx, p.ID)
	assert.ErrorIs(t, err, errs.ErrPrizeNotFound)
	assert.ErrorIs(t, f.service.Delete(ctx, p.ID), errs.ErrPrizeNotFound)
}

func TestService_AssignAndUnassign(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p, err := f.service.Create(ctx, f.raffle.ID, input("Car", 1))
	require.NoError(t, err)
	tk := f.soldTicket(t, f.raffle.ID, 4)

	assigned, err := f.service.Assign(ctx, p.ID, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PrizeAssigned, assigned.State)
	require.NotNil(t, assigned.WinningTicketID)
	assert.Equal(t, tk.ID, *assigned.WinningTicketID)

	_, err = f.service.Assign(ctx, p.ID, tk.ID)
	assert.ErrorIs(t, err, errs.ErrPrizeAlreadyAssigned)
	assert.ErrorIs(t, f.service.Delete(ctx, p.ID), errs.ErrPrizeAlreadyAssigned)

	unassigned, err := f.service.Unassign(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PrizeActive, unassigned.State)
	assert.Nil(t, unassigned.WinningTicketID)

	_, err = f.service.Unassign(ctx, p.ID)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)

	t.Run("Ticket of another raffle", func(t *testing.T) {
		other, err := entity.NewRaffle("Other", "", decimal.NewFromInt(1), "USD", 5, entity.RaffleActive, "admin", time.Now())
		require.NoError(t, err)
		require.NoError(t, repository.NewRaffleRepository(f.tdb.DB, f.tdb.TimeProvider, f.tdb.Logger).Create(ctx, other))
		foreign := f.soldTicket(t, other.ID, 2)

		_, err = f.service.Assign(ctx, p.ID, foreign.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown ticket", func(t *testing.T) {
		_, err := f.service.Assign(ctx, p.ID, 9999)
		assert.ErrorIs(t, err, errs.ErrTicketNotFound)
	})
}

func TestService_AssignRefusesTicketThatAlreadyWon(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	first, err := f.service.Create(ctx, f.raffle.ID, input("Car", 1))
	require.NoError(t, err)
	second, err := f.service.Create(ctx, f.raffle.ID, input("Phone", 2))
	require.NoError(t, err)
	tk := f.soldTicket(t, f.raffle.ID, 6)

	_, err = f.service.Assign(ctx, first.ID, tk.ID)
	require.NoError(t, err)

	_, err = f.service.Assign(ctx, second.ID, tk.ID)
	assert.ErrorIs(t, err, errs.ErrTicketAlreadyWon)
	assert.True(t, errs.IsConflictError(err))

	stored, err := f.service.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PrizeActive, stored.State)
	assert.Nil(t, stored.WinningTicketID)

	t.Run("Drawn ticket", func(t *testing.T) {
		drawn := f.soldTicket(t, f.raffle.ID, 7)
		tickets := repository.NewTicketRepository(f.tdb.DB, f.tdb.TimeProvider, f.tdb.Logger)
		_, err := drawn.Verify("admin", time.Now())
		require.NoError(t, err)
		require.NoError(t, drawn.MarkWinner(time.Now()))
		require.NoError(t, tickets.Transition(ctx, drawn, entity.TicketSold))

		_, err = f.service.Assign(ctx, second.ID, drawn.ID)
		assert.ErrorIs(t, err, errs.ErrTicketAlreadyWon)
	})
}

func TestService_FreePositions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	free, err := f.service.FreePositions(ctx, f.raffle.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, free)

	_, err = f.service.CreateBatch(ctx, f.raffle.ID, []usecase.PrizeInput{input("A", 1), input("B", 3)})
	require.NoError(t, err)

	free, err = f.service.FreePositions(ctx, f.raffle.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5}, free)

	free, err = f.service.FreePositions(ctx, f.raffle.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, free)

	_, err = f.service.FreePositions(ctx, 888, 3)
	assert.ErrorIs(t, err, errs.ErrRaffleNotFound)
}
