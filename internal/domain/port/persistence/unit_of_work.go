package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Repositories bound to the transaction in ctx, or to the plain connection outside one
	GetRaffleRepository(ctx context.Context) RaffleRepository
	GetTicketRepository(ctx context.Context) TicketRepository
	GetPrizeRepository(ctx context.Context) PrizeRepository
	GetWinnerRepository(ctx context.Context) WinnerRepository
	GetActiveRaffleRepository(ctx context.Context) ActiveRaffleRepository
}

// WithinTransaction runs fn inside a transaction, committing on success and rolling back on error or panic
func WithinTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
		if err != nil {
			_ = uow.Rollback(txCtx)
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	return uow.Commit(txCtx)
}
