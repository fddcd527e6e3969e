package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

var isolationLevels = map[string]sql.IsolationLevel{
	"read uncommitted": sql.LevelReadUncommitted,
	"read committed":   sql.LevelReadCommitted,
	"repeatable read":  sql.LevelRepeatableRead,
	"serializable":     sql.LevelSerializable,
}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      *MetricsCollector
	txOptions    *sql.TxOptions
}

// UnitOfWorkOption customises a UnitOfWork
type UnitOfWorkOption func(*UnitOfWork)

// WithIsolationLevel sets the isolation level used by Begin. It is only applied on postgres.
func WithIsolationLevel(level string) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		iso, ok := isolationLevels[strings.ToLower(strings.TrimSpace(level))]
		if !ok || u.db.Dialector.Name() != DriverPostgres {
			return
		}
		u.txOptions = &sql.TxOptions{Isolation: iso}
	}
}

// WithMetrics measures commit latency through the collector
func WithMetrics(metrics *MetricsCollector) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.metrics = metrics
	}
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...UnitOfWorkOption) persistence.UnitOfWork {
	u := &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	fields := map[string]any{}
	if u.txOptions != nil {
		fields["isolation"] = u.txOptions.Isolation.String()
	}
	u.logger.Debug("Beginning database transaction", fields)

	var tx *gorm.DB
	if u.txOptions != nil {
		tx = u.db.WithContext(ctx).Begin(u.txOptions)
	} else {
		tx = u.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Committing database transaction", nil)

	commit := func() (int64, error) {
		return 0, tx.Commit().Error
	}

	var err error
	if u.metrics != nil {
		_, err = u.metrics.MeasureQuery(ctx, "commit", commit)
	} else {
		_, err = commit()
	}

	if err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback rolls back the current transaction
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	u.logger.Debug("Rolling back database transaction", nil)

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// GetRaffleRepository returns a raffle repository bound to the current transaction
func (u *UnitOfWork) GetRaffleRepository(ctx context.Context) persistence.RaffleRepository {
	return repository.NewRaffleRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTicketRepository returns a ticket repository bound to the current transaction
func (u *UnitOfWork) GetTicketRepository(ctx context.Context) persistence.TicketRepository {
	return repository.NewTicketRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetPrizeRepository returns a prize repository bound to the current transaction
func (u *UnitOfWork) GetPrizeRepository(ctx context.Context) persistence.PrizeRepository {
	return repository.NewPrizeRepository(u.getDbFromContext(ctx), u.logger)
}

// GetWinnerRepository returns a winner repository bound to the current transaction
func (u *UnitOfWork) GetWinnerRepository(ctx context.Context) persistence.WinnerRepository {
	return repository.NewWinnerRepository(u.getDbFromContext(ctx), u.logger)
}

// GetActiveRaffleRepository returns an active raffle repository bound to the current transaction
func (u *UnitOfWork) GetActiveRaffleRepository(ctx context.Context) persistence.ActiveRaffleRepository {
	return repository.NewActiveRaffleRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the transaction from context, falling back to the plain connection
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
