package persistence

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// WinnerRepository defines methods to interact with winner data
type WinnerRepository interface {
	// CreateBatch inserts all winners of one draw
	//
	// Possible errors:
	// - ErrWinnersAlreadyExist: If a ticket already won
	CreateBatch(ctx context.Context, winners []*entity.Winner) error

	ExistsForRaffle(ctx context.Context, raffleID uint64) (bool, error)
	ListByRaffle(ctx context.Context, raffleID uint64) ([]*entity.Winner, error)
	List(ctx context.Context, page entity.Pagination) (entity.Page[*entity.Winner], error)
	GetByID(ctx context.Context, id uint64) (*entity.Winner, error)
	Update(ctx context.Context, winner *entity.Winner) error
}
