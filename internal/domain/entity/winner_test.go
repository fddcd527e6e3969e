package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWinner(t *testing.T) {
	drawnAt := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	ticket := NewSoldTicket(2, 15, "WIN15", testSale("TXN-1", drawnAt.Add(-time.Hour)))
	ticket.ID = 31

	t.Run("Stored prize", func(t *testing.T) {
		prize := &Prize{ID: 5, Name: "Car", Position: 1, Currency: "USD"}
		w := NewWinner(ticket, prize, "admin", drawnAt)

		assert.Equal(t, uint64(2), w.RaffleID)
		assert.Equal(t, uint64(31), w.TicketID)
		assert.Equal(t, 15, w.TicketNumber)
		assert.Equal(t, "Ana", w.Buyer.Name)
		assert.Equal(t, "Car", w.PrizeName)
		assert.True(t, w.IsPrimary)
		require.NotNil(t, w.PrizeID)
		assert.Equal(t, uint64(5), *w.PrizeID)
	})

	t.Run("Synthesized prize has no reference", func(t *testing.T) {
		w := NewWinner(ticket, &Prize{Name: DefaultPrizeName, Position: 1}, "admin", drawnAt)

		assert.Nil(t, w.PrizeID)
		assert.Equal(t, DefaultPrizeName, w.PrizeName)
	})
}

func TestWinnerUpdateDelivery(t *testing.T) {
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	w := &Winner{}

	w.UpdateDelivery(true, nil, "picked up", now)
	assert.True(t, w.Delivered)
	require.NotNil(t, w.DeliveredAt)
	assert.Equal(t, now, *w.DeliveredAt)
	assert.Equal(t, "picked up", w.DeliveryNotes)

	w.UpdateDelivery(false, nil, "ignored", now)
	assert.False(t, w.Delivered)
	assert.Nil(t, w.DeliveredAt)
	assert.Empty(t, w.DeliveryNotes)
}
