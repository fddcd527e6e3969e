package persistence

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// PrizeRepository defines methods to interact with prize data
type PrizeRepository interface {
	// Create stores a prize
	//
	// Possible errors:
	// - ErrDuplicatePrizePosition: If the raffle already has a prize at that position
	Create(ctx context.Context, prize *entity.Prize) error

	GetByID(ctx context.Context, id uint64) (*entity.Prize, error)

	// GetByPosition returns the prize of a raffle at position
	//
	// Possible errors:
	// - ErrPrizeNotFound: If no prize exists at that position
	GetByPosition(ctx context.Context, raffleID uint64, position int) (*entity.Prize, error)

	// ListByRaffle returns prizes ordered by position. Inactive prizes are skipped unless includeInactive.
	ListByRaffle(ctx context.Context, raffleID uint64, includeInactive bool) ([]*entity.Prize, error)

	Update(ctx context.Context, prize *entity.Prize) error
	Delete(ctx context.Context, id uint64) error

	// UsedPositions returns the positions already taken in a raffle
	UsedPositions(ctx context.Context, raffleID uint64) ([]int, error)
}
