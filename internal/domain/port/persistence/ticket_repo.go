package persistence

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// TicketFilter narrows ticket listings
type TicketFilter struct {
	State    entity.TicketState
	Verified *bool
	City     string // case-insensitive substring match on the buyer city
}

// TicketRepository defines methods to interact with ticket rows.
// (raffle_id, number) and code are unique at the storage level.
type TicketRepository interface {
	GetByID(ctx context.Context, id uint64) (*entity.Ticket, error)

	// FindByNumbers returns the existing rows for the given numbers of a raffle
	FindByNumbers(ctx context.Context, raffleID uint64, numbers []int) ([]*entity.Ticket, error)

	// Create inserts a freshly materialized ticket
	//
	// Possible errors:
	// - ErrNumberUnavailable: If a row already exists for (raffle, number)
	// - ErrTicketCodeCollision: If the generated code is already used
	Create(ctx context.Context, ticket *entity.Ticket) error

	// Transition writes every mutable field of the ticket only if the stored row is still in state from
	//
	// Possible errors:
	// - ErrInvalidStateTransition: If the stored row is no longer in state from
	Transition(ctx context.Context, ticket *entity.Ticket, from entity.TicketState) error

	// Save writes every mutable field without a state guard
	Save(ctx context.Context, ticket *entity.Ticket) error

	// CodeExists reports whether a ticket already uses code
	CodeExists(ctx context.Context, code string) (bool, error)

	// IsNumberHeld reports whether the number is sold, reserved or won
	IsNumberHeld(ctx context.Context, raffleID uint64, number int) (bool, error)

	// OccupiedNumbers returns the held numbers of a raffle in ascending order
	OccupiedNumbers(ctx context.Context, raffleID uint64) ([]int, error)

	// FindByTransaction returns the tickets of a transaction, optionally restricted to some states
	FindByTransaction(ctx context.Context, transactionID string, states ...entity.TicketState) ([]*entity.Ticket, error)

	// TransactionExists reports whether any ticket carries the transaction id
	TransactionExists(ctx context.Context, transactionID string) (bool, error)

	// ClaimTransaction reserves a transaction id for a sale of raffleID. Claims are permanent.
	//
	// Possible errors:
	// - ErrDuplicateTransaction: If the id was claimed before, by this or any other raffle
	ClaimTransaction(ctx context.Context, raffleID uint64, transactionID string) error

	ListByRaffle(ctx context.Context, raffleID uint64, filter TicketFilter, page entity.Pagination) (entity.Page[*entity.Ticket], error)

	// ListUnverified returns sold, unverified tickets oldest purchase first. raffleID 0 means every raffle.
	ListUnverified(ctx context.Context, raffleID uint64, page entity.Pagination) (entity.Page[*entity.Ticket], error)

	// ListHeld returns held tickets of a raffle ordered by purchase time
	ListHeld(ctx context.Context, raffleID uint64) ([]*entity.Ticket, error)

	// ListByEmail returns held tickets bought with the given email
	ListByEmail(ctx context.Context, email string) ([]*entity.Ticket, error)

	// ListCancelled returns tickets of a raffle that carry a cancellation record
	ListCancelled(ctx context.Context, raffleID uint64) ([]*entity.Ticket, error)

	// ListEligible returns sold and verified tickets of a raffle ordered by ID
	ListEligible(ctx context.Context, raffleID uint64) ([]*entity.Ticket, error)

	// CountHeld counts sold and winner tickets of a raffle
	CountHeld(ctx context.Context, raffleID uint64) (int64, error)
}
