package persistence

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// ActiveRaffleRepository stores the singleton active-raffle pointer
type ActiveRaffleRepository interface {
	// Get returns the pointer with its raffle loaded
	//
	// Possible errors:
	// - ErrNotFound: If no raffle is active
	Get(ctx context.Context) (*entity.ActiveRaffle, error)

	// Replace atomically overwrites the pointer. Concurrent callers end with exactly one row.
	Replace(ctx context.Context, active *entity.ActiveRaffle) error

	// Clear removes the pointer
	Clear(ctx context.Context) error
}
