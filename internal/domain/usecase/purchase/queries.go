package purchase

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// QueryService answers read-only questions about tickets and purchases
type QueryService struct {
	engine usecase.AllocationEngine
	uow    persistence.UnitOfWork
	logger coreport.Logger
}

var _ usecase.TicketQueryUseCase = (*QueryService)(nil)

// NewQueryService creates a new ticket query service
func NewQueryService(engine usecase.AllocationEngine, uow persistence.UnitOfWork, logger coreport.Logger) *QueryService {
	return &QueryService{engine: engine, uow: uow, logger: logger}
}

// IsNumberAvailable reports whether a number can still be bought
func (q *QueryService) IsNumberAvailable(ctx context.Context, raffleID uint64, number int) (bool, error) {
	return q.engine.CheckAvailable(ctx, raffleID, number)
}

// OccupiedNumbers returns the held numbers of a raffle
func (q *QueryService) OccupiedNumbers(ctx context.Context, raffleID uint64) ([]int, error) {
	if _, err := q.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	return q.uow.GetTicketRepository(ctx).OccupiedNumbers(ctx, raffleID)
}

// AvailableNumbers returns 1..total minus the held numbers
func (q *QueryService) AvailableNumbers(ctx context.Context, raffleID uint64) ([]int, error) {
	raffle, err := q.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	occupied, err := q.uow.GetTicketRepository(ctx).OccupiedNumbers(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	taken := make(map[int]struct{}, len(occupied))
	for _, n := range occupied {
		taken[n] = struct{}{}
	}
	available := make([]int, 0, raffle.TotalTickets-len(taken))
	for n := 1; n <= raffle.TotalTickets; n++ {
		if _, ok := taken[n]; !ok {
			available = append(available, n)
		}
	}
	return available, nil
}

// ListTickets pages through the tickets of a raffle
func (q *QueryService) ListTickets(ctx context.Context, raffleID uint64, filter usecase.TicketListFilter, page entity.Pagination) (entity.Page[*entity.Ticket], error) {
	if filter.State != "" && !entity.IsValidTicketState(filter.State) {
		return entity.Page[*entity.Ticket]{}, errs.NewValidationError(errs.ErrInvalidRequest, "state", "is not a ticket state")
	}
	if _, err := q.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return entity.Page[*entity.Ticket]{}, err
	}

	return q.uow.GetTicketRepository(ctx).ListByRaffle(ctx, raffleID, persistence.TicketFilter{
		State:    entity.TicketState(filter.State),
		Verified: filter.Verified,
		City:     strings.TrimSpace(filter.City),
	}, page)
}

// ListUnverified pages through sold tickets awaiting verification, oldest first
func (q *QueryService) ListUnverified(ctx context.Context, raffleID uint64, page entity.Pagination) (entity.Page[*entity.Ticket], error) {
	return q.uow.GetTicketRepository(ctx).ListUnverified(ctx, raffleID, page)
}

// PurchasesByRaffle groups the held tickets of a raffle by transaction
func (q *QueryService) PurchasesByRaffle(ctx context.Context, raffleID uint64) ([]*entity.Purchase, error) {
	if _, err := q.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	tickets, err := q.uow.GetTicketRepository(ctx).ListHeld(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	return entity.GroupPurchases(tickets), nil
}

// PurchasesByEmail groups the held tickets bought with an email by transaction
func (q *QueryService) PurchasesByEmail(ctx context.Context, email string) ([]*entity.Purchase, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidRequest, "email", "is required")
	}
	tickets, err := q.uow.GetTicketRepository(ctx).ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return entity.GroupPurchases(tickets), nil
}

// CancelledPurchases rebuilds the cancelled purchases of a raffle from their audit records
func (q *QueryService) CancelledPurchases(ctx context.Context, raffleID uint64) ([]*entity.CancelledPurchase, error) {
	tickets, err := q.uow.GetTicketRepository(ctx).ListCancelled(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	return entity.GroupCancelledPurchases(tickets), nil
}
