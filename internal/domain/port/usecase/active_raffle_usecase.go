package usecase

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
)

// ActiveRaffleUseCase manages the single raffle shown to buyers
type ActiveRaffleUseCase interface {
	// GetActive returns the active raffle, materializing the pointer from the newest active raffle when missing
	GetActive(ctx context.Context) (*entity.ActiveRaffle, error)
	Activate(ctx context.Context, raffleID uint64, actorID string) (*entity.ActiveRaffle, error)
	DeactivateAll(ctx context.Context) error
}
