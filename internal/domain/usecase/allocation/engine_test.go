package allocation_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/allocation"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/identifier"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	tdb     *database.TestDB
	engine  *allocation.Engine
	raffles *repository.RaffleRepository
	tickets *repository.TicketRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tdb := database.NewTestDB(t)
	return &fixture{
		tdb:     tdb,
		engine:  allocation.NewEngine(tdb.UnitOfWork(), identifier.NewGenerator(), tdb.TimeProvider, tdb.Logger),
		raffles: repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger),
		tickets: repository.NewTicketRepository(tdb.DB, tdb.TimeProvider, tdb.Logger),
	}
}

func (f *fixture) raffle(t *testing.T, total int, state entity.RaffleState) *entity.Raffle {
	t.Helper()
	r, err := entity.NewRaffle("Moto raffle", "", decimal.RequireFromString("2.50"), "USD", total, state, "admin", testNow)
	require.NoError(t, err)
	require.NoError(t, f.raffles.Create(context.Background(), r))
	return r
}

func (f *fixture) sold(t *testing.T, raffleID uint64) int {
	t.Helper()
	r, err := f.raffles.GetByID(context.Background(), raffleID)
	require.NoError(t, err)

	held, err := f.tickets.CountHeld(context.Background(), raffleID)
	require.NoError(t, err)
	require.Equal(t, int64(r.SoldTickets), held, "sold counter drifted from ticket rows")
	return r.SoldTickets
}

func request(raffleID uint64, txnID string, numbers ...int) usecase.AllocationRequest {
	return usecase.AllocationRequest{
		RaffleID:      raffleID,
		Numbers:       numbers,
		TransactionID: txnID,
		Buyer:         entity.Buyer{Name: "Ana", Email: "ana@example.com", City: "Caracas"},
		Payment:       entity.PaymentInfo{MethodCode: "zelle", Reference: "Z-100"},
		Proof:         entity.ProofRef{URL: "/uploads/proofs/p.png", StorageID: "p.png"},
	}
}

func TestEngine_SellAndCancelScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 10, entity.RaffleActive)

	tickets, err := f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-1", 7, 3))
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, 3, tickets[0].Number)
	assert.Equal(t, 7, tickets[1].Number)
	for _, tk := range tickets {
		assert.Equal(t, entity.TicketSold, tk.State)
		assert.NotEmpty(t, tk.Code)
		assert.True(t, tk.Price.Equal(decimal.RequireFromString("2.50")))
	}
	assert.Equal(t, 2, f.sold(t, raffle.ID))

	occupied, err := f.tickets.OccupiedNumbers(ctx, raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, occupied)

	for _, n := range []int{3, 7} {
		ok, err := f.engine.CheckAvailable(ctx, raffle.ID, n)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	result, err := f.engine.Cancel(ctx, "TXN-1", "duplicate", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, []int{3, 7}, result.FreedNumbers)
	assert.Equal(t, raffle.ID, result.RaffleID)
	assert.True(t, entity.IsCancellationTransactionID(result.CancellationID))
	assert.Equal(t, 0, f.sold(t, raffle.ID))

	stillSold, err := f.tickets.FindByTransaction(ctx, "TXN-1", entity.TicketSold)
	require.NoError(t, err)
	assert.Empty(t, stillSold)

	cancelled, err := f.tickets.ListCancelled(ctx, raffle.ID)
	require.NoError(t, err)
	require.Len(t, cancelled, 2)
	for _, tk := range cancelled {
		assert.Equal(t, entity.TicketAvailable, tk.State)
		assert.Equal(t, result.CancellationID, tk.TransactionID)
		require.NotNil(t, tk.Cancellation)
		assert.Equal(t, "duplicate", tk.Cancellation.Reason)
		assert.Equal(t, "admin-1", tk.Cancellation.CancelledBy)
		assert.Equal(t, "TXN-1", tk.Cancellation.PreviousTransactionID)
		assert.Equal(t, "ana@example.com", tk.Cancellation.Buyer.Email)
		assert.Empty(t, tk.Buyer.Email)
	}

	_, err = f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-2", 11))
	assert.ErrorIs(t, err, errs.ErrNumberOutOfRange)
	var numErr *errs.NumberError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, 11, numErr.Number)
}

func TestEngine_ResaleReusesRow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 5, entity.RaffleActive)

	first, err := f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-A", 4))
	require.NoError(t, err)
	_, err = f.engine.Cancel(ctx, "TXN-A", "buyer asked", "admin")
	require.NoError(t, err)

	ok, err := f.engine.CheckAvailable(ctx, raffle.ID, 4)
	require.NoError(t, err)
	assert.True(t, ok)

	second, err := f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-B", 4))
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Code, second[0].Code)
	assert.Equal(t, "TXN-B", second[0].TransactionID)

	stored, err := f.tickets.GetByID(ctx, second[0].ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Cancellation)
	assert.Equal(t, entity.TicketSold, stored.State)
	assert.Equal(t, 1, f.sold(t, raffle.ID))
}

func TestEngine_AllocateAndSellRefusals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	active := f.raffle(t, 3, entity.RaffleActive)
	paused := f.raffle(t, 3, entity.RafflePaused)

	_, err := f.engine.AllocateAndSell(ctx, request(active.ID, "TXN-SEED", 2))
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     usecase.AllocationRequest
		wantErr error
	}{
		{"Empty numbers", request(active.ID, "TXN-X"), errs.ErrEmptyNumbers},
		{"Duplicate numbers", request(active.ID, "TXN-X", 1, 1), errs.ErrDuplicateNumbersInRequest},
		{"Missing transaction id", request(active.ID, "", 1), errs.ErrInvalidTransactionID},
		{"Unknown raffle", request(9999, "TXN-X", 1), errs.ErrRaffleNotFound},
		{"Paused raffle", request(paused.ID, "TXN-X", 1), errs.ErrRaffleNotActive},
		{"Number zero", request(active.ID, "TXN-X", 0), errs.ErrNumberOutOfRange},
		{"More than available", request(active.ID, "TXN-X", 1, 3, 2), errs.ErrInsufficientTicketsAvailable},
		{"Number already sold", request(active.ID, "TXN-X", 1, 2), errs.ErrNumberUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets, err := f.engine.AllocateAndSell(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tickets)
		})
	}

	t.Run("Failed request leaves nothing behind", func(t *testing.T) {
		assert.Equal(t, 1, f.sold(t, active.ID))
		ok, err := f.engine.CheckAvailable(ctx, active.ID, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestEngine_ConcurrentPurchaseOfSameNumber(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 50, entity.RaffleActive)

	const buyers = 4
	var wg sync.WaitGroup
	results := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-C"+string(rune('A'+i)), 17))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrNumberUnavailable)
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, f.sold(t, raffle.ID))
}

func TestEngine_ConcurrentSalesWithSameTransactionID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 50, entity.RaffleActive)
	other := f.raffle(t, 50, entity.RaffleActive)

	const buyers = 4
	var wg sync.WaitGroup
	results := make([]error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := raffle.ID
			if i%2 == 1 {
				target = other.ID
			}
			_, results[i] = f.engine.AllocateAndSell(ctx, request(target, "TXN-SHARED", 10+i))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, f.sold(t, raffle.ID)+f.sold(t, other.ID))

	held, err := f.tickets.FindByTransaction(ctx, "TXN-SHARED")
	require.NoError(t, err)
	assert.Len(t, held, 1)
}

func TestEngine_CancelledTransactionIDStaysRetired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 10, entity.RaffleActive)

	_, err := f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-RETIRED", 1))
	require.NoError(t, err)
	_, err = f.engine.Cancel(ctx, "TXN-RETIRED", "unpaid", "admin")
	require.NoError(t, err)

	_, err = f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-RETIRED", 2))
	assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	assert.Equal(t, 0, f.sold(t, raffle.ID))
}

func TestEngine_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 10, entity.RaffleActive)

	t.Run("Unknown transaction", func(t *testing.T) {
		_, err := f.engine.Cancel(ctx, "TXN-NOPE", "r", "a")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("Empty transaction id", func(t *testing.T) {
		_, err := f.engine.Cancel(ctx, "", "r", "a")
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionID)
	})

	t.Run("Second cancellation finds nothing", func(t *testing.T) {
		_, err := f.engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-TWICE", 5, 6))
		require.NoError(t, err)
		_, err = f.engine.Cancel(ctx, "TXN-TWICE", "r", "a")
		require.NoError(t, err)

		_, err = f.engine.Cancel(ctx, "TXN-TWICE", "r", "a")
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, 0, f.sold(t, raffle.ID))
	})
}

type scriptedCodes struct {
	codes []string
	calls int
}

func (s *scriptedCodes) TicketCode() (string, error) {
	if s.calls >= len(s.codes) {
		return "", errors.New("out of codes")
	}
	c := s.codes[s.calls]
	s.calls++
	return c, nil
}

func (s *scriptedCodes) TransactionID() string { return "TXN-SCRIPTED" }

func TestEngine_TicketCodeRetries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	raffle := f.raffle(t, 10, entity.RaffleActive)
	uow := f.tdb.UnitOfWork()

	seed := allocation.NewEngine(uow, &scriptedCodes{codes: []string{"TAKEN"}}, f.tdb.TimeProvider, f.tdb.Logger)
	_, err := seed.AllocateAndSell(ctx, request(raffle.ID, "TXN-1", 1))
	require.NoError(t, err)

	t.Run("Skips a code already in use", func(t *testing.T) {
		gen := &scriptedCodes{codes: []string{"TAKEN", "FRESH"}}
		engine := allocation.NewEngine(uow, gen, f.tdb.TimeProvider, f.tdb.Logger)

		tickets, err := engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-2", 2))
		require.NoError(t, err)
		assert.Equal(t, "FRESH", tickets[0].Code)
	})

	t.Run("Gives up after repeated collisions", func(t *testing.T) {
		codes := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			codes = append(codes, "TAKEN")
		}
		engine := allocation.NewEngine(uow, &scriptedCodes{codes: codes}, f.tdb.TimeProvider, f.tdb.Logger)

		_, err := engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-3", 3))
		assert.ErrorIs(t, err, errs.ErrTicketCodeCollision)
		assert.Equal(t, 2, f.sold(t, raffle.ID))
	})
}

func TestValidateNumbers(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		wantErr error
	}{
		{"Valid", []int{1, 2, 3}, nil},
		{"Empty", nil, errs.ErrEmptyNumbers},
		{"Repeated", []int{4, 5, 4}, errs.ErrDuplicateNumbersInRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := allocation.ValidateNumbers(tt.numbers)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}
