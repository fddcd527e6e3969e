package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// DeliveryUpdate changes the delivery status of a winner
type DeliveryUpdate struct {
	Delivered   bool
	DeliveredAt *time.Time
	Notes       string
}

// DrawUseCase selects winners and tracks prize delivery
type DrawUseCase interface {
	// SelectMultipleWinners draws one winner per active prize of the raffle
	SelectMultipleWinners(ctx context.Context, raffleID uint64, actorID string) ([]*entity.Winner, error)
	// SelectSingleWinner draws the position 1 winner, synthesizing a default prize when none is stored
	SelectSingleWinner(ctx context.Context, raffleID uint64, actorID string) (*entity.Winner, error)
	ListWinners(ctx context.Context, raffleID uint64) ([]*entity.Winner, error)
	ListAllWinners(ctx context.Context, page entity.Pagination) (entity.Page[*entity.Winner], error)
	UpdateDelivery(ctx context.Context, winnerID uint64, update DeliveryUpdate) (*entity.Winner, error)
}
