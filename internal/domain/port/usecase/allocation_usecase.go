package usecase

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// AllocationRequest is a validated request to sell numbers of a raffle under one transaction
type AllocationRequest struct {
	RaffleID      uint64
	Numbers       []int
	TransactionID string
	Buyer         entity.Buyer
	Payment       entity.PaymentInfo
	Proof         entity.ProofRef
}

// CancellationResult describes what a cancellation freed
type CancellationResult struct {
	RaffleID       uint64 `json:"raffleId"`
	Count          int    `json:"count"`
	FreedNumbers   []int  `json:"freedNumbers"`
	CancellationID string `json:"cancellationId"`
}

// AllocationEngine sells and releases numbered tickets while keeping the raffle sold counter consistent
type AllocationEngine interface {
	// CheckAvailable reports whether number can be sold
	CheckAvailable(ctx context.Context, raffleID uint64, number int) (bool, error)

	// AllocateAndSell sells every requested number or none of them
	AllocateAndSell(ctx context.Context, req AllocationRequest) ([]*entity.Ticket, error)

	// Cancel releases every sold ticket of a transaction or none of them
	Cancel(ctx context.Context, transactionID, reason, actor string) (*CancellationResult, error)
}
