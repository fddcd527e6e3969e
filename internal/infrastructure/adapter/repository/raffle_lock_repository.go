package repository

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RaffleLockRepository implements the draw lock with a row per raffle
type RaffleLockRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRaffleLockRepository creates a new RaffleLockRepository instance
func NewRaffleLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RaffleLockRepository {
	return &RaffleLockRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AcquireLock inserts the lock row or takes over an expired one in a single upsert.
// No affected row means an unexpired lock belongs to someone else.
func (r *RaffleLockRepository) AcquireLock(ctx context.Context, raffleID uint64, owner string, ttl time.Duration) error {
	r.logger.Debug("Attempting to acquire draw lock", map[string]any{
		"raffle_id": raffleID,
		"owner":     owner,
		"ttl":       ttl.String(),
	})

	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO raffle_locks (raffle_id, owner, locked_at, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (raffle_id) DO UPDATE
		SET owner = excluded.owner,
		    locked_at = excluded.locked_at,
		    expires_at = excluded.expires_at,
		    updated_at = excluded.updated_at
		WHERE raffle_locks.expires_at <= ?`,
		raffleID, owner, now, expiresAt, now, now,
		now,
	)

	if result.Error != nil {
		if isContextError(result.Error) {
			r.logger.Warn("Context timeout acquiring draw lock", map[string]any{
				"raffle_id": raffleID,
				"error":     result.Error.Error(),
			})
			return fmt.Errorf("lock acquisition timeout: %w", result.Error)
		}

		r.logger.Error("Database error acquiring draw lock", map[string]any{
			"raffle_id": raffleID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Raffle is already locked for a draw", map[string]any{
			"raffle_id": raffleID,
		})
		return errs.ErrDrawInProgress
	}

	r.logger.Info("Draw lock acquired", map[string]any{
		"raffle_id":  raffleID,
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return nil
}

// ReleaseLock deletes the lock row if owner still holds it
func (r *RaffleLockRepository) ReleaseLock(ctx context.Context, raffleID uint64, owner string) error {
	result := r.db.WithContext(ctx).
		Where("raffle_id = ? AND owner = ?", raffleID, owner).
		Delete(&model.RaffleLock{})

	// The lock expires on its own, a timed out release is not fatal
	if result.Error != nil && isContextError(result.Error) {
		r.logger.Warn("Context timeout when releasing draw lock, lock will expire automatically", map[string]any{
			"raffle_id": raffleID,
			"error":     result.Error.Error(),
		})
		return nil
	}

	if result.Error != nil {
		r.logger.Error("Failed to release draw lock", map[string]any{
			"raffle_id": raffleID,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No draw lock to release, it may have expired", map[string]any{
			"raffle_id": raffleID,
			"owner":     owner,
		})
		return nil
	}

	r.logger.Info("Draw lock released", map[string]any{
		"raffle_id": raffleID,
	})
	return nil
}

// CleanupExpiredLocks removes all expired locks from the database
func (r *RaffleLockRepository) CleanupExpiredLocks(ctx context.Context) error {
	now := r.timeProvider.Now()

	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.RaffleLock{})
	if result.Error != nil {
		r.logger.Error("Failed to clean up expired draw locks", map[string]any{
			"error": result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Info("Expired draw locks cleanup completed", map[string]any{
		"locks_removed": result.RowsAffected,
	})
	return nil
}
