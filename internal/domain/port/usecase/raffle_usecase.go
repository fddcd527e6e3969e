package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateRaffleInput carries the fields of a new raffle
type CreateRaffleInput struct {
	Title             string
	Description       string
	Price             decimal.Decimal
	SecondaryPrice    decimal.NullDecimal
	Currency          string
	SecondaryCurrency string
	TotalTickets      int
	State             entity.RaffleState
	DrawDate          *time.Time
	ImageURL          string
	OwnerID           string
}

// UpdateRaffleInput carries optional changes to a raffle. Nil fields stay unchanged.
type UpdateRaffleInput struct {
	Title          *string
	Description    *string
	Price          *decimal.Decimal
	SecondaryPrice *decimal.NullDecimal
	DrawDate       *time.Time
	ImageURL       *string
	State          *entity.RaffleState
}

// RaffleUseCase administers raffles
type RaffleUseCase interface {
	Create(ctx context.Context, input CreateRaffleInput) (*entity.Raffle, error)
	Get(ctx context.Context, id uint64) (*entity.Raffle, error)
	List(ctx context.Context, state string, page entity.Pagination) (entity.Page[*entity.Raffle], error)
	Update(ctx context.Context, id uint64, input UpdateRaffleInput) (*entity.Raffle, error)
	Cancel(ctx context.Context, id uint64) (*entity.Raffle, error)
	CanSell(ctx context.Context, id uint64, count int) (bool, error)
	Stats(ctx context.Context) (entity.RaffleStats, error)
	CheckSoldCounter(ctx context.Context, id uint64) (entity.SoldCounterReport, error)
}
