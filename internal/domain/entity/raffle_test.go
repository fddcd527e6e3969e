package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaffle(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Valid raffle defaults to active", func(t *testing.T) {
		r, err := NewRaffle(" Moto ", "desc", decimal.RequireFromString("5.50"), "usd", 100, "", "admin-1", now)

		require.NoError(t, err)
		assert.Equal(t, "Moto", r.Title)
		assert.Equal(t, RaffleActive, r.State)
		assert.Equal(t, "USD", r.Currency)
		assert.Equal(t, 100, r.TotalTickets)
		assert.Equal(t, 0, r.SoldTickets)
		assert.Equal(t, now, r.CreatedAt)
	})

	t.Run("Paused initial state is allowed", func(t *testing.T) {
		r, err := NewRaffle("Car", "", decimal.NewFromInt(1), "", 10, RafflePaused, "admin", now)

		require.NoError(t, err)
		assert.Equal(t, RafflePaused, r.State)
		assert.Equal(t, DefaultCurrency, r.Currency)
	})

	testCases := []struct {
		name  string
		title string
		price decimal.Decimal
		total int
		state RaffleState
		field string
	}{
		{"Empty title", "  ", decimal.NewFromInt(1), 10, "", "title"},
		{"Negative price", "x", decimal.NewFromInt(-1), 10, "", "price"},
		{"Zero tickets", "x", decimal.NewFromInt(1), 0, "", "totalTickets"},
		{"Finished initial state", "x", decimal.NewFromInt(1), 10, RaffleFinished, "state"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRaffle(tc.title, "", tc.price, "", tc.total, tc.state, "", now)

			assert.Nil(t, r)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidRaffle)
			var vErr *errs.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestRaffleCounters(t *testing.T) {
	r := &Raffle{ID: 7, TotalTickets: 10, SoldTickets: 3, State: RaffleActive}

	assert.Equal(t, 7, r.Available())
	assert.Equal(t, 30.0, r.Progress())
	assert.True(t, r.CanSell(7))
	assert.False(t, r.CanSell(8))
	assert.False(t, r.CanSell(0))

	r.State = RafflePaused
	assert.False(t, r.CanSell(1))

	r.SoldTickets = 12
	assert.Equal(t, 0, r.Available())

	third := &Raffle{TotalTickets: 3, SoldTickets: 1}
	assert.Equal(t, 33.33, third.Progress())
}

func TestRaffleValidateNumber(t *testing.T) {
	r := &Raffle{ID: 1, TotalTickets: 10}

	for _, n := range []int{1, 5, 10} {
		assert.NoError(t, r.ValidateNumber(n))
	}
	for _, n := range []int{0, -1, 11} {
		err := r.ValidateNumber(n)
		assert.ErrorIs(t, err, errs.ErrNumberOutOfRange)
	}
}

func TestRaffleTransitionTo(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		from    RaffleState
		to      RaffleState
		allowed bool
	}{
		{RaffleActive, RafflePaused, true},
		{RafflePaused, RaffleActive, true},
		{RaffleActive, RaffleFinished, true},
		{RafflePaused, RaffleCancelled, true},
		{RaffleFinished, RaffleCancelled, true},
		{RaffleFinished, RaffleActive, false},
		{RaffleCancelled, RaffleActive, false},
		{RaffleCancelled, RaffleCancelled, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			r := &Raffle{State: tc.from}
			err := r.TransitionTo(tc.to, now)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, r.State)
			} else {
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Equal(t, tc.from, r.State)
			}
		})
	}
}
