package activeraffle

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// SystemActor is recorded when the pointer is materialized without an admin request
const SystemActor = "system"

// Service manages the singleton pointer to the raffle shown to buyers
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.ActiveRaffleUseCase = (*Service)(nil)

// NewService creates a new active raffle service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{uow: uow, timeProvider: timeProvider, logger: logger}
}

// GetActive returns the stored pointer. Without one, the newest active raffle
// is pointed at and returned.
func (s *Service) GetActive(ctx context.Context) (*entity.ActiveRaffle, error) {
	active, err := s.uow.GetActiveRaffleRepository(ctx).Get(ctx)
	if err == nil {
		return active, nil
	}
	if !errs.IsNotFoundError(err) {
		return nil, err
	}

	s.logger.Debug("No active raffle pointer, falling back to latest active raffle", nil)

	var result *entity.ActiveRaffle
	err = persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		raffle, err := s.uow.GetRaffleRepository(txCtx).LatestActive(txCtx)
		if err != nil {
			return err
		}
		result = &entity.ActiveRaffle{
			RaffleID:    raffle.ID,
			ActivatedBy: SystemActor,
			ActivatedAt: s.timeProvider.Now(),
			Raffle:      raffle,
		}
		return s.uow.GetActiveRaffleRepository(txCtx).Replace(txCtx, result)
	})
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrRaffleNotFound
		}
		s.logger.Error("Failed to materialize active raffle", map[string]any{"error": err.Error()})
		return nil, err
	}

	s.logger.Info("Active raffle pointer materialized", map[string]any{"raffle_id": result.RaffleID})
	return result, nil
}

// Activate points the singleton at raffleID, replacing any previous pointer.
// A paused raffle is resumed; finished and cancelled raffles are refused.
func (s *Service) Activate(ctx context.Context, raffleID uint64, actorID string) (*entity.ActiveRaffle, error) {
	var result *entity.ActiveRaffle
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		raffles := s.uow.GetRaffleRepository(txCtx)
		raffle, err := raffles.GetForUpdate(txCtx, raffleID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		switch raffle.State {
		case entity.RaffleFinished, entity.RaffleCancelled:
			return fmt.Errorf("%w: raffle %d is %s", errs.ErrRaffleNotActive, raffleID, raffle.State)
		case entity.RafflePaused:
			if err := raffle.TransitionTo(entity.RaffleActive, now); err != nil {
				return err
			}
			if err := raffles.Update(txCtx, raffle); err != nil {
				return err
			}
		}

		result = &entity.ActiveRaffle{
			RaffleID:    raffle.ID,
			ActivatedBy: actorID,
			ActivatedAt: now,
			Raffle:      raffle,
		}
		return s.uow.GetActiveRaffleRepository(txCtx).Replace(txCtx, result)
	})
	if err != nil {
		fields := map[string]any{"raffle_id": raffleID, "actor_id": actorID, "error": err.Error()}
		if errors.Is(err, errs.ErrRaffleNotActive) || errs.IsNotFoundError(err) {
			s.logger.Warn("Raffle activation refused", fields)
		} else {
			s.logger.Error("Failed to activate raffle", fields)
		}
		return nil, err
	}

	s.logger.Info("Raffle activated", map[string]any{"raffle_id": raffleID, "actor_id": actorID})
	return result, nil
}

// DeactivateAll removes the pointer; having no active raffle is a valid state
func (s *Service) DeactivateAll(ctx context.Context) error {
	if err := s.uow.GetActiveRaffleRepository(ctx).Clear(ctx); err != nil {
		s.logger.Error("Failed to deactivate raffles", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
