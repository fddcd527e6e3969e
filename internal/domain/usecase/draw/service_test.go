package draw_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/draw"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	mockcore "github.com/amirhossein-jamali/raffle-service/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/raffle-service/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var drawNow = time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)

type fixture struct {
	tdb     *database.TestDB
	tickets *repository.TicketRepository
	prizes  *repository.PrizeRepository
	raffle  *entity.Raffle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tdb := database.NewTestDB(t)
	f := &fixture{
		tdb:     tdb,
		tickets: repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger),
		prizes:  repository.NewPrizeRepository(tdb.DB, tdb.Logger),
	}
	r, err := entity.NewRaffle("Draw raffle", "", decimal.NewFromInt(5), "USD", 100, entity.RaffleActive, "admin", drawNow)
	require.NoError(t, err)
	require.NoError(t, repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger).Create(context.Background(), r))
	f.raffle = r
	return f
}

func (f *fixture) service(locks persistence.RaffleLockRepository, src coreport.RandomSource) *draw.Service {
	if locks == nil {
		locks = repository.NewRaffleLockRepository(f.tdb.DB, f.tdb.TimeProvider, f.tdb.Logger)
	}
	if src == nil {
		src = random.NewCryptoSource()
	}
	return draw.NewService(f.tdb.UnitOfWork(), locks, src, f.tdb.TimeProvider, f.tdb.Logger, time.Minute)
}

func (f *fixture) ticket(t *testing.T, number int, verified bool) *entity.Ticket {
	t.Helper()
	ctx := context.Background()
	tk := entity.NewSoldTicket(f.raffle.ID, number, fmt.Sprintf("CODE%04d", number), entity.Sale{
		TransactionID: fmt.Sprintf("TXN-%d", number),
		Buyer:         entity.Buyer{Name: fmt.Sprintf("Buyer %d", number), Email: fmt.Sprintf("b%d@example.com", number)},
		Payment:       entity.PaymentInfo{MethodCode: "cash"},
		Price:         f.raffle.Price,
		PurchasedAt:   drawNow,
	})
	require.NoError(t, f.tickets.Create(ctx, tk))
	if verified {
		_, err := tk.Verify("admin", drawNow)
		require.NoError(t, err)
		require.NoError(t, f.tickets.Transition(ctx, tk, entity.TicketSold))
	}
	return tk
}

func (f *fixture) prize(t *testing.T, position int) *entity.Prize {
	t.Helper()
	p, err := entity.NewPrize(f.raffle.ID, fmt.Sprintf("Prize %d", position), "", position, decimal.NullDecimal{}, "USD", drawNow)
	require.NoError(t, err)
	require.NoError(t, f.prizes.Create(context.Background(), p))
	return p
}

func (f *fixture) ticketState(t *testing.T, id uint64) entity.TicketState {
	t.Helper()
	tk, err := f.tickets.GetByID(context.Background(), id)
	require.NoError(t, err)
	return tk.State
}

func TestService_SelectMultipleWinners(t *testing.T) {
	ctx := context.Background()

	t.Run("Three verified tickets and two prizes", func(t *testing.T) {
		f := newFixture(t)
		verified := []*entity.Ticket{f.ticket(t, 1, true), f.ticket(t, 2, true), f.ticket(t, 3, true)}
		unverified := f.ticket(t, 4, false)
		first, second := f.prize(t, 1), f.prize(t, 2)
		svc := f.service(nil, nil)

		winners, err := svc.SelectMultipleWinners(ctx, f.raffle.ID, "admin-9")
		require.NoError(t, err)
		require.Len(t, winners, 2)

		assert.Equal(t, 1, winners[0].PrizePosition)
		assert.True(t, winners[0].IsPrimary)
		assert.Equal(t, 2, winners[1].PrizePosition)
		assert.False(t, winners[1].IsPrimary)
		assert.NotEqual(t, winners[0].TicketID, winners[1].TicketID)
		assert.Equal(t, "admin-9", winners[0].SelectedBy)

		won := map[uint64]bool{winners[0].TicketID: true, winners[1].TicketID: true}
		winnerCount, soldCount := 0, 0
		for _, tk := range verified {
			switch f.ticketState(t, tk.ID) {
			case entity.TicketWinner:
				winnerCount++
				assert.True(t, won[tk.ID])
			case entity.TicketSold:
				soldCount++
			}
		}
		assert.Equal(t, 2, winnerCount)
		assert.Equal(t, 1, soldCount)
		assert.Equal(t, entity.TicketSold, f.ticketState(t, unverified.ID))

		for i, p := range []*entity.Prize{first, second} {
			stored, err := f.prizes.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.PrizeAssigned, stored.State)
			require.NotNil(t, stored.WinningTicketID)
			assert.Equal(t, winners[i].TicketID, *stored.WinningTicketID)
		}

		listed, err := svc.ListWinners(ctx, f.raffle.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 2)

		_, err = svc.SelectMultipleWinners(ctx, f.raffle.ID, "admin-9")
		assert.ErrorIs(t, err, errs.ErrWinnersAlreadyExist)
	})

	t.Run("Refusals leave nothing behind", func(t *testing.T) {
		tests := []struct {
			name    string
			setup   func(t *testing.T, f *fixture)
			raffle  func(f *fixture) uint64
			wantErr error
		}{
			{
				name: "Only unverified tickets",
				setup: func(t *testing.T, f *fixture) {
					f.ticket(t, 1, false)
					f.prize(t, 1)
				},
				wantErr: errs.ErrNoEligibleTickets,
			},
			{
				name: "Fewer tickets than prizes",
				setup: func(t *testing.T, f *fixture) {
					f.ticket(t, 1, true)
					f.prize(t, 1)
					f.prize(t, 2)
				},
				wantErr: errs.ErrInsufficientTickets,
			},
			{
				name: "No prizes configured",
				setup: func(t *testing.T, f *fixture) {
					f.ticket(t, 1, true)
				},
				wantErr: errs.ErrPrizeNotFound,
			},
			{
				name:    "Unknown raffle",
				setup:   func(*testing.T, *fixture) {},
				raffle:  func(*fixture) uint64 { return 4040 },
				wantErr: errs.ErrRaffleNotFound,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)
				tt.setup(t, f)
				raffleID := f.raffle.ID
				if tt.raffle != nil {
					raffleID = tt.raffle(f)
				}

				_, err := f.service(nil, nil).SelectMultipleWinners(ctx, raffleID, "admin")
				assert.ErrorIs(t, err, tt.wantErr)

				var winners int64
				require.NoError(t, f.tdb.DB.Table("winners").Count(&winners).Error)
				assert.Zero(t, winners)
			})
		}
	})

	t.Run("Random source failure rolls the draw back", func(t *testing.T) {
		f := newFixture(t)
		a, b := f.ticket(t, 1, true), f.ticket(t, 2, true)
		p := f.prize(t, 1)

		src := mockcore.NewMockRandomSource(t)
		src.EXPECT().Intn(2).Return(0, errors.New("entropy exhausted"))

		_, err := f.service(nil, src).SelectMultipleWinners(ctx, f.raffle.ID, "admin")
		require.Error(t, err)

		assert.Equal(t, entity.TicketSold, f.ticketState(t, a.ID))
		assert.Equal(t, entity.TicketSold, f.ticketState(t, b.ID))
		stored, err := f.prizes.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PrizeActive, stored.State)
	})

	t.Run("Scripted source decides the winners", func(t *testing.T) {
		f := newFixture(t)
		f.ticket(t, 10, true)
		f.ticket(t, 20, true)
		last := f.ticket(t, 30, true)
		f.prize(t, 1)

		// i=2 swaps the last ticket to the front, i=1 leaves the rest in place
		src := mockcore.NewMockRandomSource(t)
		src.EXPECT().Intn(3).Return(0, nil).Once()
		src.EXPECT().Intn(2).Return(1, nil).Once()

		winners, err := f.service(nil, src).SelectMultipleWinners(ctx, f.raffle.ID, "admin")
		require.NoError(t, err)
		assert.Equal(t, last.ID, winners[0].TicketID)
		assert.Equal(t, 30, winners[0].TicketNumber)
	})

	t.Run("Ticket holding a manual prize is not drawn again", func(t *testing.T) {
		f := newFixture(t)
		holder := f.ticket(t, 1, true)
		other := f.ticket(t, 2, true)
		f.prize(t, 1)
		manual := f.prize(t, 2)
		require.NoError(t, manual.Assign(holder.ID, drawNow))
		require.NoError(t, f.prizes.Update(ctx, manual))

		winners, err := f.service(nil, nil).SelectMultipleWinners(ctx, f.raffle.ID, "admin")
		require.NoError(t, err)
		require.Len(t, winners, 1)
		assert.Equal(t, other.ID, winners[0].TicketID)
		assert.Equal(t, 1, winners[0].PrizePosition)
		assert.Equal(t, entity.TicketSold, f.ticketState(t, holder.ID))
	})

	t.Run("Only prize holders left means no eligible tickets", func(t *testing.T) {
		f := newFixture(t)
		holder := f.ticket(t, 1, true)
		f.prize(t, 1)
		manual := f.prize(t, 2)
		require.NoError(t, manual.Assign(holder.ID, drawNow))
		require.NoError(t, f.prizes.Update(ctx, manual))

		_, err := f.service(nil, nil).SelectMultipleWinners(ctx, f.raffle.ID, "admin")
		assert.ErrorIs(t, err, errs.ErrNoEligibleTickets)
	})
}

func TestService_DrawLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Held lock refuses the draw", func(t *testing.T) {
		f := newFixture(t)
		f.ticket(t, 1, true)
		f.prize(t, 1)

		locks := mockpersistence.NewMockRaffleLockRepository(t)
		locks.EXPECT().AcquireLock(mock.Anything, f.raffle.ID, mock.Anything, time.Minute).Return(errs.ErrDrawInProgress)

		_, err := f.service(locks, nil).SelectMultipleWinners(ctx, f.raffle.ID, "admin")
		assert.ErrorIs(t, err, errs.ErrDrawInProgress)
	})

	t.Run("Lock is released with the same owner", func(t *testing.T) {
		f := newFixture(t)
		f.ticket(t, 1, true)

		var owner string
		locks := mockpersistence.NewMockRaffleLockRepository(t)
		locks.EXPECT().AcquireLock(mock.Anything, f.raffle.ID, mock.Anything, time.Minute).
			Run(func(_ context.Context, _ uint64, o string, _ time.Duration) { owner = o }).
			Return(nil)
		locks.EXPECT().ReleaseLock(mock.Anything, f.raffle.ID, mock.Anything).
			Run(func(_ context.Context, _ uint64, o string) { assert.Equal(t, owner, o) }).
			Return(errors.New("lock store down"))

		_, err := f.service(locks, nil).SelectSingleWinner(ctx, f.raffle.ID, "admin")
		require.NoError(t, err)
		assert.Contains(t, owner, "admin-")
	})
}

func TestService_SelectSingleWinner(t *testing.T) {
	ctx := context.Background()

	t.Run("Synthesizes the default prize", func(t *testing.T) {
		f := newFixture(t)
		f.ticket(t, 7, true)

		winner, err := f.service(nil, nil).SelectSingleWinner(ctx, f.raffle.ID, "admin")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultPrizeName, winner.PrizeName)
		assert.Nil(t, winner.PrizeID)
		assert.True(t, winner.IsPrimary)
		assert.Equal(t, 7, winner.TicketNumber)
	})

	t.Run("Uses the stored position 1 prize only", func(t *testing.T) {
		f := newFixture(t)
		f.ticket(t, 1, true)
		f.ticket(t, 2, true)
		first, second := f.prize(t, 1), f.prize(t, 2)

		winner, err := f.service(nil, nil).SelectSingleWinner(ctx, f.raffle.ID, "admin")
		require.NoError(t, err)
		require.NotNil(t, winner.PrizeID)
		assert.Equal(t, first.ID, *winner.PrizeID)

		stored, err := f.prizes.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PrizeActive, stored.State)
	})
}

func TestService_Winners(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.ticket(t, 1, true)
	svc := f.service(nil, nil)

	winner, err := svc.SelectSingleWinner(ctx, f.raffle.ID, "admin")
	require.NoError(t, err)

	t.Run("Delivery date defaults to now", func(t *testing.T) {
		updated, err := svc.UpdateDelivery(ctx, winner.ID, usecase.DeliveryUpdate{Delivered: true, Notes: "handed over"})
		require.NoError(t, err)
		assert.True(t, updated.Delivered)
		assert.NotNil(t, updated.DeliveredAt)
		assert.Equal(t, "handed over", updated.DeliveryNotes)
	})

	t.Run("Undelivered clears date and notes", func(t *testing.T) {
		updated, err := svc.UpdateDelivery(ctx, winner.ID, usecase.DeliveryUpdate{Delivered: false, Notes: "ignored"})
		require.NoError(t, err)
		assert.Nil(t, updated.DeliveredAt)
		assert.Empty(t, updated.DeliveryNotes)
	})

	t.Run("Unknown winner", func(t *testing.T) {
		_, err := svc.UpdateDelivery(ctx, 999, usecase.DeliveryUpdate{Delivered: true})
		assert.ErrorIs(t, err, errs.ErrWinnerNotFound)
	})

	t.Run("List all", func(t *testing.T) {
		page, err := svc.ListAllWinners(ctx, entity.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Items, 1)
		assert.Equal(t, winner.ID, page.Items[0].ID)
	})
}
