package persistence

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// RaffleFilter narrows raffle listings
type RaffleFilter struct {
	State entity.RaffleState
}

// RaffleRepository defines methods to interact with raffle data
type RaffleRepository interface {
	// Create stores a new raffle and sets its ID
	Create(ctx context.Context, raffle *entity.Raffle) error

	// GetByID retrieves a raffle
	//
	// Possible errors:
	// - ErrRaffleNotFound: If raffle with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Raffle, error)

	// GetForUpdate retrieves a raffle and locks its row until the surrounding transaction ends.
	// Databases without row locks fall back to a plain read.
	GetForUpdate(ctx context.Context, id uint64) (*entity.Raffle, error)

	// List returns a page of raffles, newest first
	List(ctx context.Context, filter RaffleFilter, page entity.Pagination) (entity.Page[*entity.Raffle], error)

	// LatestActive returns the most recently created raffle in state active
	//
	// Possible errors:
	// - ErrRaffleNotFound: If no raffle is active
	LatestActive(ctx context.Context) (*entity.Raffle, error)

	// Update writes the mutable descriptive fields and state. The sold counter is never written.
	Update(ctx context.Context, raffle *entity.Raffle) error

	// IncrementSold atomically adds count to the sold counter while keeping sold <= total
	//
	// Possible errors:
	// - ErrRaffleNotFound: If raffle doesn't exist
	// - ErrInsufficientTicketsAvailable: If the increment would exceed the total
	IncrementSold(ctx context.Context, id uint64, count int) error

	// DecrementSold atomically subtracts count from the sold counter, clamped at zero
	DecrementSold(ctx context.Context, id uint64, count int) error

	// Stats counts raffles per state and the tickets sold across all of them
	Stats(ctx context.Context) (entity.RaffleStats, error)
}
