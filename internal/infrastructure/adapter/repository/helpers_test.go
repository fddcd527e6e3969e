package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func createRaffle(t *testing.T, tdb *database.TestDB, total int) *entity.Raffle {
	t.Helper()

	r, err := entity.NewRaffle("Moto raffle", "", decimal.RequireFromString("2.50"), "USD", total, entity.RaffleActive, "admin", testNow)
	require.NoError(t, err)
	require.NoError(t, repository.NewRaffleRepository(tdb.DB, tdb.TimeProvider, tdb.Logger).Create(context.Background(), r))
	return r
}

func sale(txnID string) entity.Sale {
	return entity.Sale{
		TransactionID: txnID,
		Buyer:         entity.Buyer{Name: "Ana", Email: "ana@example.com", City: "Caracas"},
		Payment:       entity.PaymentInfo{MethodCode: "zelle", Reference: "REF-1"},
		Proof:         entity.ProofRef{URL: "/proofs/a.png", StorageID: "a.png"},
		Price:         decimal.RequireFromString("2.50"),
		PurchasedAt:   testNow,
	}
}

func sellNumbers(t *testing.T, repo *repository.TicketRepository, raffleID uint64, txnID string, numbers ...int) []*entity.Ticket {
	t.Helper()

	tickets := make([]*entity.Ticket, 0, len(numbers))
	for _, n := range numbers {
		ticket := entity.NewSoldTicket(raffleID, n, fmt.Sprintf("C%d-%d", raffleID, n), sale(txnID))
		require.NoError(t, repo.Create(context.Background(), ticket))
		tickets = append(tickets, ticket)
	}
	return tickets
}
