package persistence

import (
	"context"
	"time"
)

// RaffleLockRepository defines methods for holding a per-raffle draw lock
type RaffleLockRepository interface {
	// AcquireLock takes the lock for owner. An expired lock held by someone else is taken over.
	//
	// Possible errors:
	// - ErrDrawInProgress: If another owner holds an unexpired lock
	// - ErrDatabaseConnection: If the backend fails
	AcquireLock(ctx context.Context, raffleID uint64, owner string, ttl time.Duration) error

	// ReleaseLock releases the lock if owner still holds it
	ReleaseLock(ctx context.Context, raffleID uint64, owner string) error
}
