package prize

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// Service administers the prizes of raffles
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PrizeUseCase = (*Service)(nil)

// NewService creates a new prize service
func NewService(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{uow: uow, timeProvider: timeProvider, logger: logger}
}

// Create adds a prize to a raffle. Positions are unique per raffle.
func (s *Service) Create(ctx context.Context, raffleID uint64, input usecase.PrizeInput) (*entity.Prize, error) {
	if _, err := s.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	p, err := s.create(ctx, raffleID, input)
	if err != nil {
		s.logger.Warn("Prize creation refused", map[string]any{
			"raffle_id": raffleID,
			"position":  input.Position,
			"error":     err.Error(),
		})
		return nil, err
	}
	return p, nil
}

func (s *Service) create(ctx context.Context, raffleID uint64, input usecase.PrizeInput) (*entity.Prize, error) {
	p, err := entity.NewPrize(raffleID, input.Name, input.Description, input.Position, input.Value, input.Currency, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	if err := s.uow.GetPrizeRepository(ctx).Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Prize created", map[string]any{
		"prize_id":  p.ID,
		"raffle_id": raffleID,
		"position":  p.Position,
	})
	return p, nil
}

// CreateBatch adds several prizes at once; either all are stored or none
func (s *Service) CreateBatch(ctx context.Context, raffleID uint64, inputs []usecase.PrizeInput) ([]*entity.Prize, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValidationError(errs.ErrInvalidPrize, "prizes", "must not be empty")
	}
	seen := make(map[int]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.Position]; dup {
			return nil, fmt.Errorf("%w: position %d is repeated in the batch", errs.ErrDuplicatePrizePosition, in.Position)
		}
		seen[in.Position] = struct{}{}
	}

	var created []*entity.Prize
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		if _, err := s.uow.GetRaffleRepository(txCtx).GetByID(txCtx, raffleID); err != nil {
			return err
		}
		created = make([]*entity.Prize, 0, len(inputs))
		for _, in := range inputs {
			p, err := s.create(txCtx, raffleID, in)
			if err != nil {
				return err
			}
			created = append(created, p)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Prize batch refused", map[string]any{
			"raffle_id": raffleID,
			"count":     len(inputs),
			"error":     err.Error(),
		})
		return nil, err
	}
	return created, nil
}

// ListByRaffle returns the prizes of a raffle by position
func (s *Service) ListByRaffle(ctx context.Context, raffleID uint64, includeInactive bool) ([]*entity.Prize, error) {
	if _, err := s.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	return s.uow.GetPrizeRepository(ctx).ListByRaffle(ctx, raffleID, includeInactive)
}

// Get returns a prize
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Prize, error) {
	return s.uow.GetPrizeRepository(ctx).GetByID(ctx, id)
}

// Update changes the provided fields. Assignment is only changed through Assign and Unassign.
func (s *Service) Update(ctx context.Context, id uint64, input usecase.PrizeInput) (*entity.Prize, error) {
	repo := s.uow.GetPrizeRepository(ctx)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		p.Name = name
	}
	if input.Description != "" {
		p.Description = input.Description
	}
	if input.Position != 0 {
		if input.Position < 1 {
			return nil, errs.NewValidationError(errs.ErrInvalidPrize, "position", "must be at least 1")
		}
		p.Position = input.Position
	}
	if input.Value.Valid {
		if input.Value.Decimal.IsNegative() {
			return nil, errs.NewValidationError(errs.ErrInvalidPrize, "value", "must not be negative")
		}
		p.Value = input.Value
	}
	if input.Currency != "" {
		p.Currency = strings.ToUpper(input.Currency)
	}
	if input.State != "" && input.State != p.State {
		if !entity.IsValidPrizeState(string(input.State)) {
			return nil, errs.NewValidationError(errs.ErrInvalidPrize, "state", "is not a prize state")
		}
		if input.State == entity.PrizeAssigned || p.State == entity.PrizeAssigned {
			return nil, fmt.Errorf("%w: use assign or unassign to change prize %d", errs.ErrInvalidStateTransition, id)
		}
		p.State = input.State
	}
	p.UpdatedAt = s.timeProvider.Now()

	if err := repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("Prize updated", map[string]any{"prize_id": id, "state": p.State})
	return p, nil
}

// Delete removes a prize that has no winner
func (s *Service) Delete(ctx context.Context, id uint64) error {
	repo := s.uow.GetPrizeRepository(ctx)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.State == entity.PrizeAssigned {
		return errs.ErrPrizeAlreadyAssigned
	}
	return repo.Delete(ctx, id)
}

// Assign manually records a held ticket of the same raffle as the prize winner
func (s *Service) Assign(ctx context.Context, prizeID, ticketID uint64) (*entity.Prize, error) {
	var assigned *entity.Prize
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		prizes := s.uow.GetPrizeRepository(txCtx)
		p, err := prizes.GetByID(txCtx, prizeID)
		if err != nil {
			return err
		}
		t, err := s.uow.GetTicketRepository(txCtx).GetByID(txCtx, ticketID)
		if err != nil {
			return err
		}
		if t.RaffleID != p.RaffleID {
			return errs.NewValidationError(errs.ErrInvalidRequest, "ticketId", "belongs to another raffle")
		}
		if !t.IsHeld() {
			return fmt.Errorf("%w: ticket %d is %s", errs.ErrInvalidStateTransition, ticketID, t.State)
		}
		if t.State == entity.TicketWinner {
			return fmt.Errorf("%w: ticket %d was drawn", errs.ErrTicketAlreadyWon, ticketID)
		}
		others, err := prizes.ListByRaffle(txCtx, p.RaffleID, true)
		if err != nil {
			return err
		}
		for _, other := range others {
			if other.ID != p.ID && other.WinningTicketID != nil && *other.WinningTicketID == ticketID {
				return fmt.Errorf("%w: ticket %d holds prize %d", errs.ErrTicketAlreadyWon, ticketID, other.ID)
			}
		}
		if err := p.Assign(ticketID, s.timeProvider.Now()); err != nil {
			return err
		}
		if err := prizes.Update(txCtx, p); err != nil {
			return err
		}
		assigned = p
		return nil
	})
	if err != nil {
		s.logger.Warn("Prize assignment refused", map[string]any{
			"prize_id":  prizeID,
			"ticket_id": ticketID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Prize assigned", map[string]any{"prize_id": prizeID, "ticket_id": ticketID})
	return assigned, nil
}

// Unassign returns an assigned prize to active
func (s *Service) Unassign(ctx context.Context, prizeID uint64) (*entity.Prize, error) {
	repo := s.uow.GetPrizeRepository(ctx)
	p, err := repo.GetByID(ctx, prizeID)
	if err != nil {
		return nil, err
	}
	if err := p.Unassign(s.timeProvider.Now()); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("Prize unassigned", map[string]any{"prize_id": prizeID})
	return p, nil
}

// FreePositions lists the unused positions in 1..upTo.
// With upTo <= 0 the range ends one past the highest used position.
func (s *Service) FreePositions(ctx context.Context, raffleID uint64, upTo int) ([]int, error) {
	if _, err := s.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	used, err := s.uow.GetPrizeRepository(ctx).UsedPositions(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	if upTo <= 0 {
		upTo = 1
		if len(used) > 0 {
			upTo = slices.Max(used) + 1
		}
	}

	free := make([]int, 0, upTo)
	for pos := 1; pos <= upTo; pos++ {
		if !slices.Contains(used, pos) {
			free = append(free, pos)
		}
	}
	return free, nil
}
