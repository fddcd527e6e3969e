package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale(txnID string, at time.Time) Sale {
	return Sale{
		TransactionID: txnID,
		Buyer:         Buyer{Name: "Ana", Email: "ana@example.com", City: "Caracas"},
		Payment:       PaymentInfo{MethodCode: "zelle", Reference: "REF-1"},
		Proof:         ProofRef{URL: "/proofs/a.png", StorageID: "a.png"},
		Price:         decimal.RequireFromString("2.50"),
		PurchasedAt:   at,
	}
}

func TestNewSoldTicket(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ticket := NewSoldTicket(3, 7, "ABC123", testSale("TXN-1", at))

	assert.Equal(t, TicketSold, ticket.State)
	assert.Equal(t, 7, ticket.Number)
	assert.Equal(t, "ABC123", ticket.Code)
	assert.Equal(t, "TXN-1", ticket.TransactionID)
	assert.Equal(t, "ana@example.com", ticket.Buyer.Email)
	require.NotNil(t, ticket.PurchasedAt)
	assert.Equal(t, at, *ticket.PurchasedAt)
	assert.Equal(t, "zelle", ticket.Payment.MethodCode)
	assert.Equal(t, "a.png", ticket.Proof.StorageID)
	assert.True(t, ticket.Price.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, at, ticket.CreatedAt)
	assert.Equal(t, at, ticket.UpdatedAt)
	assert.False(t, ticket.Verified)
	assert.Nil(t, ticket.Cancellation)
	assert.True(t, ticket.IsHeld())
}

func TestTicketSell(t *testing.T) {
	at := time.Now()

	t.Run("Held ticket cannot be sold again", func(t *testing.T) {
		ticket := NewSoldTicket(1, 4, "C", testSale("TXN-1", at))

		err := ticket.Sell(testSale("TXN-2", at))

		assert.ErrorIs(t, err, errs.ErrNumberUnavailable)
		assert.Equal(t, "TXN-1", ticket.TransactionID)
	})

	t.Run("Resale clears cancellation record and keeps identity", func(t *testing.T) {
		ticket := NewSoldTicket(1, 4, "C", testSale("TXN-1", at))
		ticket.ID = 99
		require.NoError(t, ticket.Cancel("duplicate", "admin", CancellationTransactionID(at, "TXN-1"), at))
		require.NotNil(t, ticket.Cancellation)

		require.NoError(t, ticket.Sell(testSale("TXN-2", at.Add(time.Minute))))

		assert.Equal(t, uint64(99), ticket.ID)
		assert.Equal(t, "C", ticket.Code)
		assert.Equal(t, TicketSold, ticket.State)
		assert.Equal(t, "TXN-2", ticket.TransactionID)
		assert.Nil(t, ticket.Cancellation)
	})
}

func TestTicketVerify(t *testing.T) {
	at := time.Now()
	ticket := NewSoldTicket(1, 1, "X", testSale("TXN-1", at))

	changed, err := ticket.Verify("admin", at)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, ticket.Verified)
	assert.Equal(t, "admin", ticket.VerifiedBy)

	changed, err = ticket.Verify("other", at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "admin", ticket.VerifiedBy)

	available := &Ticket{State: TicketAvailable}
	_, err = available.Verify("admin", at)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestTicketCancel(t *testing.T) {
	at := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)
	ticket := NewSoldTicket(1, 3, "CODE", testSale("TXN-9", at.Add(-time.Hour)))
	_, _ = ticket.Verify("admin", at.Add(-time.Minute))
	cancelID := CancellationTransactionID(at, "TXN-9")

	require.NoError(t, ticket.Cancel("duplicate", "admin-2", cancelID, at))

	assert.Equal(t, TicketAvailable, ticket.State)
	assert.Equal(t, Buyer{}, ticket.Buyer)
	assert.Equal(t, PaymentInfo{}, ticket.Payment)
	assert.True(t, ticket.Proof.IsZero())
	assert.False(t, ticket.Verified)
	assert.Nil(t, ticket.PurchasedAt)
	assert.Equal(t, cancelID, ticket.TransactionID)
	assert.True(t, IsCancellationTransactionID(ticket.TransactionID))

	rec := ticket.Cancellation
	require.NotNil(t, rec)
	assert.Equal(t, "TXN-9", rec.PreviousTransactionID)
	assert.Equal(t, "duplicate", rec.Reason)
	assert.Equal(t, "admin-2", rec.CancelledBy)
	assert.Equal(t, "ana@example.com", rec.Buyer.Email)
	assert.True(t, rec.Verified)
	assert.Equal(t, "zelle", rec.Payment.MethodCode)

	err := ticket.Cancel("again", "admin", cancelID, at)
	assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestTicketMarkWinner(t *testing.T) {
	at := time.Now()
	ticket := NewSoldTicket(1, 3, "CODE", testSale("TXN-9", at))

	assert.ErrorIs(t, ticket.MarkWinner(at), errs.ErrInvalidStateTransition)

	_, _ = ticket.Verify("admin", at)
	require.NoError(t, ticket.MarkWinner(at))
	assert.Equal(t, TicketWinner, ticket.State)
	assert.True(t, ticket.IsHeld())
	assert.False(t, ticket.IsEligibleForDraw())
}

func TestCancellationTransactionID(t *testing.T) {
	at := time.UnixMilli(1714550400123)

	assert.Equal(t, "CANCELLED_1714550400123_TXN-1", CancellationTransactionID(at, "TXN-1"))
	assert.False(t, IsCancellationTransactionID("TXN-1"))
}
