package usecase

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
	"github.com/shopspring/decimal"
)

// PurchaseRequest is what a buyer submits to buy numbers
type PurchaseRequest struct {
	RaffleID         uint64
	Numbers          []int
	Buyer            entity.Buyer
	PaymentMethod    string
	PaymentReference string
	TransactionID    string // Optional; generated when empty
	Proof            *gateway.ProofFile
}

// PurchaseResult is returned after a successful purchase
type PurchaseResult struct {
	TransactionID string
	Tickets       []*entity.Ticket
	Total         decimal.Decimal
}

// PurchaseUseCase drives purchases and their verify/cancel transitions
type PurchaseUseCase interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error)
	VerifyTransaction(ctx context.Context, transactionID, verifiedBy string) ([]*entity.Ticket, error)
	CancelTransaction(ctx context.Context, transactionID, reason, actor string) (*CancellationResult, error)
	VerifyTicket(ctx context.Context, ticketID uint64, verifiedBy string) (*entity.Ticket, error)
	ReplaceProof(ctx context.Context, ticketID uint64, file gateway.ProofFile) (*entity.Ticket, error)
}

// TicketQueryUseCase answers read-only questions about tickets and purchases
type TicketQueryUseCase interface {
	IsNumberAvailable(ctx context.Context, raffleID uint64, number int) (bool, error)
	OccupiedNumbers(ctx context.Context, raffleID uint64) ([]int, error)
	AvailableNumbers(ctx context.Context, raffleID uint64) ([]int, error)
	ListTickets(ctx context.Context, raffleID uint64, filter TicketListFilter, page entity.Pagination) (entity.Page[*entity.Ticket], error)
	ListUnverified(ctx context.Context, raffleID uint64, page entity.Pagination) (entity.Page[*entity.Ticket], error)
	PurchasesByRaffle(ctx context.Context, raffleID uint64) ([]*entity.Purchase, error)
	PurchasesByEmail(ctx context.Context, email string) ([]*entity.Purchase, error)
	CancelledPurchases(ctx context.Context, raffleID uint64) ([]*entity.CancelledPurchase, error)
}

// TicketListFilter narrows ticket listings
type TicketListFilter struct {
	State    string
	Verified *bool
	City     string
}
