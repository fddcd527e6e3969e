package raffle_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/activeraffle"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/allocation"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/raffle"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/identifier"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newServices(t *testing.T) (*raffle.Service, *activeraffle.Service) {
	t.Helper()
	tdb := database.NewTestDB(t)
	uow := tdb.UnitOfWork()
	return raffle.NewService(uow, tdb.TimeProvider, tdb.Logger), activeraffle.NewService(uow, tdb.TimeProvider, tdb.Logger)
}

func validInput() usecase.CreateRaffleInput {
	return usecase.CreateRaffleInput{
		Title:             "  Car raffle ",
		Price:             decimal.RequireFromString("10.00"),
		SecondaryPrice:    decimal.NewNullDecimal(decimal.RequireFromString("365.50")),
		Currency:          "usd",
		SecondaryCurrency: "ves",
		TotalTickets:      1000,
		OwnerID:           "admin",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	t.Run("Defaults to active", func(t *testing.T) {
		r, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.NotZero(t, r.ID)
		assert.Equal(t, "Car raffle", r.Title)
		assert.Equal(t, entity.RaffleActive, r.State)
		assert.Equal(t, "USD", r.Currency)
		assert.Equal(t, "VES", r.SecondaryCurrency)

		got, err := svc.Get(ctx, r.ID)
		require.NoError(t, err)
		assert.True(t, got.SecondaryPrice.Valid)
		assert.Zero(t, got.SoldTickets)
	})

	tests := []struct {
		name   string
		mutate func(in *usecase.CreateRaffleInput)
		field  string
	}{
		{"Missing title", func(in *usecase.CreateRaffleInput) { in.Title = " " }, "title"},
		{"Negative price", func(in *usecase.CreateRaffleInput) { in.Price = decimal.NewFromInt(-1) }, "price"},
		{"No tickets", func(in *usecase.CreateRaffleInput) { in.TotalTickets = 0 }, "totalTickets"},
		{"Finished state", func(in *usecase.CreateRaffleInput) { in.State = entity.RaffleFinished }, "state"},
		{"Negative secondary price", func(in *usecase.CreateRaffleInput) {
			in.SecondaryPrice = decimal.NewNullDecimal(decimal.NewFromInt(-5))
		}, "secondaryPrice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(ctx, in)
			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)
	r, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	draw := time.Date(2024, 12, 24, 20, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, r.ID, usecase.UpdateRaffleInput{
		Title:    ptr("Truck raffle"),
		Price:    ptr(decimal.RequireFromString("12.50")),
		DrawDate: &draw,
		State:    ptr(entity.RafflePaused),
	})
	require.NoError(t, err)
	assert.Equal(t, "Truck raffle", updated.Title)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, entity.RafflePaused, updated.State)

	ok, err := svc.CanSell(ctx, r.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Update(ctx, r.ID, usecase.UpdateRaffleInput{State: ptr(entity.RaffleState("archived"))})
	assert.ErrorIs(t, err, errs.ErrInvalidRaffle)

	_, err = svc.Update(ctx, r.ID, usecase.UpdateRaffleInput{State: ptr(entity.RaffleFinished)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, r.ID, usecase.UpdateRaffleInput{State: ptr(entity.RaffleActive)})
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)

	_, err = svc.Update(ctx, 777, usecase.UpdateRaffleInput{Title: ptr("x")})
	assert.ErrorIs(t, err, errs.ErrRaffleNotFound)
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears the active pointer of the cancelled raffle", func(t *testing.T) {
		svc, active := newServices(t)
		r, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		_, err = active.Activate(ctx, r.ID, "admin")
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RaffleCancelled, cancelled.State)

		_, err = active.GetActive(ctx)
		assert.ErrorIs(t, err, errs.ErrRaffleNotFound)

		_, err = svc.Cancel(ctx, r.ID)
		require.NoError(t, err)
	})

	t.Run("Keeps a pointer to another raffle", func(t *testing.T) {
		svc, active := newServices(t)
		kept, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		other, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		_, err = active.Activate(ctx, kept.ID, "admin")
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, other.ID)
		require.NoError(t, err)

		current, err := active.GetActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, kept.ID, current.RaffleID)
	})
}

func TestService_ListAndStats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServices(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
	}
	paused := validInput()
	paused.State = entity.RafflePaused
	_, err := svc.Create(ctx, paused)
	require.NoError(t, err)

	page, err := svc.List(ctx, "active", entity.Pagination{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 2)

	page, err = svc.List(ctx, "", entity.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)

	_, err = svc.List(ctx, "sold-out", entity.Pagination{})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(3), stats.Active)
	assert.Equal(t, int64(1), stats.Paused)
	assert.Zero(t, stats.TicketsSold)

	ok, err := svc.CanSell(ctx, page.Items[len(page.Items)-1].ID, 1000)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_CheckSoldCounter(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	svc := raffle.NewService(tdb.UnitOfWork(), tdb.TimeProvider, tdb.Logger)
	engine := allocation.NewEngine(tdb.UnitOfWork(), identifier.NewGenerator(), tdb.TimeProvider, tdb.Logger)

	r, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = engine.AllocateAndSell(ctx, usecase.AllocationRequest{
		RaffleID:      r.ID,
		Numbers:       []int{4, 8, 15},
		TransactionID: "TXN-COUNT",
		Buyer:         entity.Buyer{Name: "Ana", Email: "ana@example.com"},
		Payment:       entity.PaymentInfo{MethodCode: "zelle"},
	})
	require.NoError(t, err)

	report, err := svc.CheckSoldCounter(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, report.SoldCounter)
	assert.Equal(t, int64(3), report.HeldTickets)
	assert.True(t, report.Consistent)

	require.NoError(t, tdb.DB.Exec("UPDATE raffles SET sold_tickets = 5 WHERE id = ?", r.ID).Error)
	report, err = svc.CheckSoldCounter(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, report.SoldCounter)
	assert.False(t, report.Consistent)

	_, err = svc.CheckSoldCounter(ctx, 4040)
	assert.ErrorIs(t, err, errs.ErrRaffleNotFound)
}
