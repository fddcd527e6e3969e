package draw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

// DefaultLockTTL bounds how long a crashed draw can block the next one
const DefaultLockTTL = 30 * time.Second

// Service draws winners from the verified tickets of a raffle.
// A raffle is drawn at most once: any stored winner makes later draws fail.
type Service struct {
	uow          persistence.UnitOfWork
	locks        persistence.RaffleLockRepository
	random       coreport.RandomSource
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTTL      time.Duration
}

var _ usecase.DrawUseCase = (*Service)(nil)

// NewService creates a new draw service
func NewService(
	uow persistence.UnitOfWork,
	locks persistence.RaffleLockRepository,
	random coreport.RandomSource,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTTL time.Duration,
) *Service {
	if lockTTL <= 0 {
		lockTTL = DefaultLockTTL
	}
	return &Service{
		uow:          uow,
		locks:        locks,
		random:       random,
		timeProvider: timeProvider,
		logger:       logger,
		lockTTL:      lockTTL,
	}
}

// prizeSource picks the prizes of a draw inside its transaction
type prizeSource func(ctx context.Context, raffleID uint64) ([]*entity.Prize, error)

// SelectMultipleWinners draws one ticket per active prize, in position order
func (s *Service) SelectMultipleWinners(ctx context.Context, raffleID uint64, actorID string) ([]*entity.Winner, error) {
	return s.draw(ctx, raffleID, actorID, s.activePrizes)
}

// SelectSingleWinner draws the position 1 winner
func (s *Service) SelectSingleWinner(ctx context.Context, raffleID uint64, actorID string) (*entity.Winner, error) {
	winners, err := s.draw(ctx, raffleID, actorID, s.primaryPrize)
	if err != nil {
		return nil, err
	}
	return winners[0], nil
}

func (s *Service) activePrizes(ctx context.Context, raffleID uint64) ([]*entity.Prize, error) {
	all, err := s.uow.GetPrizeRepository(ctx).ListByRaffle(ctx, raffleID, false)
	if err != nil {
		return nil, err
	}
	prizes := make([]*entity.Prize, 0, len(all))
	for _, p := range all {
		if p.State == entity.PrizeActive {
			prizes = append(prizes, p)
		}
	}
	if len(prizes) == 0 {
		return nil, fmt.Errorf("%w: raffle %d has no active prizes", errs.ErrPrizeNotFound, raffleID)
	}
	return prizes, nil
}

// primaryPrize returns the stored position 1 prize, or an unsaved default one
func (s *Service) primaryPrize(ctx context.Context, raffleID uint64) ([]*entity.Prize, error) {
	prize, err := s.uow.GetPrizeRepository(ctx).GetByPosition(ctx, raffleID, 1)
	if err == nil {
		return []*entity.Prize{prize}, nil
	}
	if !errors.Is(err, errs.ErrPrizeNotFound) {
		return nil, err
	}
	return []*entity.Prize{{
		RaffleID: raffleID,
		Name:     entity.DefaultPrizeName,
		Position: 1,
		Currency: entity.DefaultCurrency,
		State:    entity.PrizeActive,
	}}, nil
}

func (s *Service) draw(ctx context.Context, raffleID uint64, actorID string, prizesFor prizeSource) ([]*entity.Winner, error) {
	owner := fmt.Sprintf("%s-%d", actorID, s.timeProvider.Now().UnixNano())
	if err := s.locks.AcquireLock(ctx, raffleID, owner, s.lockTTL); err != nil {
		s.logger.Warn("Draw lock not acquired", map[string]any{
			"raffle_id": raffleID,
			"actor_id":  actorID,
			"error":     err.Error(),
		})
		return nil, err
	}
	defer func() {
		if err := s.locks.ReleaseLock(context.WithoutCancel(ctx), raffleID, owner); err != nil {
			s.logger.Warn("Failed to release draw lock", map[string]any{
				"raffle_id": raffleID,
				"error":     err.Error(),
			})
		}
	}()

	var winners []*entity.Winner
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		var err error
		winners, err = s.drawInTx(txCtx, raffleID, actorID, prizesFor)
		return err
	})
	if err != nil {
		fields := map[string]any{"raffle_id": raffleID, "actor_id": actorID, "error": err.Error()}
		if errs.IsConflictError(err) || errs.IsNotFoundError(err) {
			s.logger.Warn("Draw refused", fields)
		} else {
			s.logger.Error("Draw failed", fields)
		}
		return nil, err
	}

	drawn := make([]map[string]any, len(winners))
	for i, w := range winners {
		drawn[i] = map[string]any{"position": w.PrizePosition, "ticket_id": w.TicketID, "number": w.TicketNumber}
	}
	s.logger.Info("Winners drawn", map[string]any{
		"raffle_id": raffleID,
		"actor_id":  actorID,
		"winners":   drawn,
	})
	return winners, nil
}

func (s *Service) drawInTx(ctx context.Context, raffleID uint64, actorID string, prizesFor prizeSource) ([]*entity.Winner, error) {
	if _, err := s.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}

	tickets := s.uow.GetTicketRepository(ctx)
	pool, err := tickets.ListEligible(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	pool, err = s.withoutPrizeHolders(ctx, raffleID, pool)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, errs.ErrNoEligibleTickets
	}

	exists, err := s.uow.GetWinnerRepository(ctx).ExistsForRaffle(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrWinnersAlreadyExist
	}

	prizes, err := prizesFor(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	if len(pool) < len(prizes) {
		return nil, fmt.Errorf("%w: %d eligible for %d prizes", errs.ErrInsufficientTickets, len(pool), len(prizes))
	}

	if err := shuffle(pool, s.random); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	prizeRepo := s.uow.GetPrizeRepository(ctx)
	winners := make([]*entity.Winner, 0, len(prizes))
	for i, prize := range prizes {
		ticket := pool[i]
		if err := ticket.MarkWinner(now); err != nil {
			return nil, err
		}
		if err := tickets.Transition(ctx, ticket, entity.TicketSold); err != nil {
			return nil, err
		}

		if prize.ID != 0 {
			if err := prize.Assign(ticket.ID, now); err != nil {
				return nil, err
			}
			if err := prizeRepo.Update(ctx, prize); err != nil {
				return nil, err
			}
		}

		winners = append(winners, entity.NewWinner(ticket, prize, actorID, now))
	}

	if err := s.uow.GetWinnerRepository(ctx).CreateBatch(ctx, winners); err != nil {
		return nil, err
	}
	return winners, nil
}

// withoutPrizeHolders drops tickets already recorded as the winner of a prize,
// including manual assignments, so a ticket wins at most once per raffle
func (s *Service) withoutPrizeHolders(ctx context.Context, raffleID uint64, pool []*entity.Ticket) ([]*entity.Ticket, error) {
	prizes, err := s.uow.GetPrizeRepository(ctx).ListByRaffle(ctx, raffleID, true)
	if err != nil {
		return nil, err
	}
	holders := make(map[uint64]struct{}, len(prizes))
	for _, p := range prizes {
		if p.WinningTicketID != nil {
			holders[*p.WinningTicketID] = struct{}{}
		}
	}
	if len(holders) == 0 {
		return pool, nil
	}

	eligible := pool[:0]
	for _, t := range pool {
		if _, taken := holders[t.ID]; !taken {
			eligible = append(eligible, t)
		}
	}
	return eligible, nil
}

// shuffle is a Fisher-Yates shuffle driven by src
func shuffle(tickets []*entity.Ticket, src coreport.RandomSource) error {
	for i := len(tickets) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("drawing random index: %w", err)
		}
		tickets[i], tickets[j] = tickets[j], tickets[i]
	}
	return nil
}

// ListWinners returns the winners of a raffle in prize order
func (s *Service) ListWinners(ctx context.Context, raffleID uint64) ([]*entity.Winner, error) {
	if _, err := s.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	return s.uow.GetWinnerRepository(ctx).ListByRaffle(ctx, raffleID)
}

// ListAllWinners pages through the winners of every raffle
func (s *Service) ListAllWinners(ctx context.Context, page entity.Pagination) (entity.Page[*entity.Winner], error) {
	return s.uow.GetWinnerRepository(ctx).List(ctx, page)
}

// UpdateDelivery records whether the prize reached its winner
func (s *Service) UpdateDelivery(ctx context.Context, winnerID uint64, update usecase.DeliveryUpdate) (*entity.Winner, error) {
	repo := s.uow.GetWinnerRepository(ctx)
	winner, err := repo.GetByID(ctx, winnerID)
	if err != nil {
		return nil, err
	}

	winner.UpdateDelivery(update.Delivered, update.DeliveredAt, update.Notes, s.timeProvider.Now())
	if err := repo.Update(ctx, winner); err != nil {
		return nil, err
	}

	s.logger.Info("Winner delivery updated", map[string]any{
		"winner_id": winnerID,
		"delivered": winner.Delivered,
	})
	return winner, nil
}
