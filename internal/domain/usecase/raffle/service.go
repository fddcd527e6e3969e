package raffle

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// Service administers raffles. Raffles are never deleted, only cancelled.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.RaffleUseCase = (*Service)(nil)

// NewService creates a new raffle service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{uow: uow, timeProvider: timeProvider, logger: logger}
}

// Create stores a new raffle, active unless the input asks for paused
func (s *Service) Create(ctx context.Context, input usecase.CreateRaffleInput) (*entity.Raffle, error) {
	r, err := entity.NewRaffle(
		input.Title,
		input.Description,
		input.Price,
		input.Currency,
		input.TotalTickets,
		input.State,
		input.OwnerID,
		s.timeProvider.Now(),
	)
	if err != nil {
		s.logger.Warn("Invalid raffle", map[string]any{"title": input.Title, "error": err.Error()})
		return nil, err
	}

	if input.SecondaryPrice.Valid && input.SecondaryPrice.Decimal.IsNegative() {
		return nil, errs.NewValidationError(errs.ErrInvalidRaffle, "secondaryPrice", "must not be negative")
	}
	r.SecondaryPrice = input.SecondaryPrice
	r.SecondaryCurrency = strings.ToUpper(strings.TrimSpace(input.SecondaryCurrency))
	r.DrawDate = input.DrawDate
	r.ImageURL = strings.TrimSpace(input.ImageURL)

	if err := s.uow.GetRaffleRepository(ctx).Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Raffle created", map[string]any{
		"raffle_id":     r.ID,
		"total_tickets": r.TotalTickets,
		"state":         r.State,
		"owner_id":      r.OwnerID,
	})
	return r, nil
}

// Get returns a raffle
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Raffle, error) {
	return s.uow.GetRaffleRepository(ctx).GetByID(ctx, id)
}

// List pages through raffles, optionally restricted to one state
func (s *Service) List(ctx context.Context, state string, page entity.Pagination) (entity.Page[*entity.Raffle], error) {
	state = strings.ToLower(strings.TrimSpace(state))
	if state != "" && !entity.IsValidRaffleState(state) {
		return entity.Page[*entity.Raffle]{}, errs.NewValidationError(errs.ErrInvalidRequest, "state", "is not a raffle state")
	}
	return s.uow.GetRaffleRepository(ctx).List(ctx, persistence.RaffleFilter{State: entity.RaffleState(state)}, page)
}

// Update applies the non-nil fields of input. State changes follow the raffle lifecycle.
func (s *Service) Update(ctx context.Context, id uint64, input usecase.UpdateRaffleInput) (*entity.Raffle, error) {
	var updated *entity.Raffle
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		repo := s.uow.GetRaffleRepository(txCtx)
		r, err := repo.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.apply(r, input); err != nil {
			return err
		}
		if err := repo.Update(txCtx, r); err != nil {
			return err
		}
		if r.State == entity.RaffleCancelled {
			if err := s.releaseActive(txCtx, r.ID); err != nil {
				return err
			}
		}
		updated = r
		return nil
	})
	if err != nil {
		s.logger.Warn("Raffle update failed", map[string]any{"raffle_id": id, "error": err.Error()})
		return nil, err
	}

	s.logger.Info("Raffle updated", map[string]any{"raffle_id": id, "state": updated.State})
	return updated, nil
}

func (s *Service) apply(r *entity.Raffle, input usecase.UpdateRaffleInput) error {
	now := s.timeProvider.Now()

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return errs.NewValidationError(errs.ErrInvalidRaffle, "title", "is required")
		}
		r.Title = title
	}
	if input.Description != nil {
		r.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return errs.NewValidationError(errs.ErrInvalidRaffle, "price", "must not be negative")
		}
		r.Price = *input.Price
	}
	if input.SecondaryPrice != nil {
		if input.SecondaryPrice.Valid && input.SecondaryPrice.Decimal.IsNegative() {
			return errs.NewValidationError(errs.ErrInvalidRaffle, "secondaryPrice", "must not be negative")
		}
		r.SecondaryPrice = *input.SecondaryPrice
	}
	if input.DrawDate != nil {
		r.DrawDate = input.DrawDate
	}
	if input.ImageURL != nil {
		r.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.State != nil {
		if !entity.IsValidRaffleState(string(*input.State)) {
			return errs.NewValidationError(errs.ErrInvalidRaffle, "state", "is not a raffle state")
		}
		if err := r.TransitionTo(*input.State, now); err != nil {
			return err
		}
	}
	r.UpdatedAt = now
	return nil
}

// Cancel moves a raffle to cancelled and drops the active pointer when it points at it
func (s *Service) Cancel(ctx context.Context, id uint64) (*entity.Raffle, error) {
	cancelled := entity.RaffleCancelled
	return s.Update(ctx, id, usecase.UpdateRaffleInput{State: &cancelled})
}

// releaseActive clears the active pointer if it references raffleID
func (s *Service) releaseActive(ctx context.Context, raffleID uint64) error {
	repo := s.uow.GetActiveRaffleRepository(ctx)
	active, err := repo.Get(ctx)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if active.RaffleID != raffleID {
		return nil
	}

	s.logger.Info("Clearing active pointer of cancelled raffle", map[string]any{"raffle_id": raffleID})
	return repo.Clear(ctx)
}

// CanSell reports whether count more tickets can be sold right now
func (s *Service) CanSell(ctx context.Context, id uint64, count int) (bool, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return r.CanSell(count), nil
}

// Stats aggregates raffle counts per state
func (s *Service) Stats(ctx context.Context) (entity.RaffleStats, error) {
	return s.uow.GetRaffleRepository(ctx).Stats(ctx)
}

// CheckSoldCounter compares the sold counter with the sold and winner rows of the raffle
func (s *Service) CheckSoldCounter(ctx context.Context, id uint64) (entity.SoldCounterReport, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return entity.SoldCounterReport{}, err
	}
	held, err := s.uow.GetTicketRepository(ctx).CountHeld(ctx, id)
	if err != nil {
		return entity.SoldCounterReport{}, err
	}

	report := entity.SoldCounterReport{
		RaffleID:    id,
		SoldCounter: r.SoldTickets,
		HeldTickets: held,
		Consistent:  int64(r.SoldTickets) == held,
	}
	if !report.Consistent {
		s.logger.Warn("Sold counter does not match held tickets", map[string]any{
			"raffle_id":    id,
			"sold_counter": r.SoldTickets,
			"held_tickets": held,
		})
	}
	return report, nil
}
