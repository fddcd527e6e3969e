package usecase

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PrizeInput carries the fields of a prize
type PrizeInput struct {
	Name        string
	Description string
	Position    int
	Value       decimal.NullDecimal
	Currency    string
	State       entity.PrizeState // Only used on update
}

// PrizeUseCase administers the prizes of a raffle
type PrizeUseCase interface {
	Create(ctx context.Context, raffleID uint64, input PrizeInput) (*entity.Prize, error)
	CreateBatch(ctx context.Context, raffleID uint64, inputs []PrizeInput) ([]*entity.Prize, error)
	ListByRaffle(ctx context.Context, raffleID uint64, includeInactive bool) ([]*entity.Prize, error)
	Get(ctx context.Context, id uint64) (*entity.Prize, error)
	Update(ctx context.Context, id uint64, input PrizeInput) (*entity.Prize, error)
	Delete(ctx context.Context, id uint64) error
	Assign(ctx context.Context, prizeID, ticketID uint64) (*entity.Prize, error)
	Unassign(ctx context.Context, prizeID uint64) (*entity.Prize, error)
	FreePositions(ctx context.Context, raffleID uint64, upTo int) ([]int, error)
}
