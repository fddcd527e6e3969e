package allocation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
)

const (
	// codeAttempts bounds the lookups for an unused ticket code inside one sale
	codeAttempts = 5
	// saleAttempts bounds whole-sale retries after a code collision surfaced at insert time
	saleAttempts = 3
)

// Engine sells and releases numbered tickets.
// Exclusivity of (raffle, number) and ticket codes rests on the storage unique indexes;
// the sold counter is only changed through atomic increments and decrements.
type Engine struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AllocationEngine = (*Engine)(nil)

// NewEngine creates a new allocation engine
func NewEngine(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CheckAvailable reports whether number of the raffle can be sold.
// Rows freed by a cancellation count as available.
func (e *Engine) CheckAvailable(ctx context.Context, raffleID uint64, number int) (bool, error) {
	raffle, err := e.uow.GetRaffleRepository(ctx).GetByID(ctx, raffleID)
	if err != nil {
		return false, err
	}
	if err := raffle.ValidateNumber(number); err != nil {
		return false, err
	}

	held, err := e.uow.GetTicketRepository(ctx).IsNumberHeld(ctx, raffleID, number)
	if err != nil {
		return false, err
	}
	return !held, nil
}

// ValidateNumbers rejects empty requests and repeated numbers
func ValidateNumbers(numbers []int) error {
	if len(numbers) == 0 {
		return errs.NewValidationError(errs.ErrEmptyNumbers, "numbers", "must not be empty")
	}
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if _, dup := seen[n]; dup {
			return errs.NewValidationError(errs.ErrDuplicateNumbersInRequest, "numbers", fmt.Sprintf("%d is repeated", n))
		}
		seen[n] = struct{}{}
	}
	return nil
}

// AllocateAndSell sells every requested number under one transaction id, or none of them
func (e *Engine) AllocateAndSell(ctx context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
	if err := ValidateNumbers(req.Numbers); err != nil {
		return nil, err
	}
	if req.TransactionID == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidTransactionID, "transactionId", "is required")
	}

	e.logger.Debug("Allocating tickets", map[string]any{
		"raffle_id":      req.RaffleID,
		"transaction_id": req.TransactionID,
		"numbers":        req.Numbers,
	})

	var (
		sold []*entity.Ticket
		err  error
	)
	for attempt := 1; attempt <= saleAttempts; attempt++ {
		err = persistence.WithinTransaction(ctx, e.uow, func(txCtx context.Context) error {
			var sellErr error
			sold, sellErr = e.sell(txCtx, req)
			return sellErr
		})
		if !errors.Is(err, errs.ErrTicketCodeCollision) {
			break
		}
		e.logger.Warn("Ticket code collision, retrying sale", map[string]any{
			"raffle_id":      req.RaffleID,
			"transaction_id": req.TransactionID,
			"attempt":        attempt,
		})
	}

	if err != nil {
		fields := map[string]any{
			"raffle_id":      req.RaffleID,
			"transaction_id": req.TransactionID,
			"numbers":        req.Numbers,
			"error":          err.Error(),
		}
		if errs.IsValidationError(err) || errs.IsConflictError(err) || errs.IsNotFoundError(err) {
			e.logger.Warn("Ticket allocation refused", fields)
		} else {
			e.logger.Error("Ticket allocation failed", fields)
		}
		return nil, err
	}

	e.logger.Info("Tickets sold", map[string]any{
		"raffle_id":      req.RaffleID,
		"transaction_id": req.TransactionID,
		"count":          len(sold),
	})
	return sold, nil
}

// sell runs inside a database transaction
func (e *Engine) sell(ctx context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
	raffles := e.uow.GetRaffleRepository(ctx)
	tickets := e.uow.GetTicketRepository(ctx)

	raffle, err := raffles.GetForUpdate(ctx, req.RaffleID)
	if err != nil {
		return nil, err
	}
	if !raffle.IsSelling() {
		return nil, fmt.Errorf("%w: raffle %d is %s", errs.ErrRaffleNotActive, raffle.ID, raffle.State)
	}

	numbers := append([]int(nil), req.Numbers...)
	sort.Ints(numbers)
	for _, n := range numbers {
		if err := raffle.ValidateNumber(n); err != nil {
			return nil, err
		}
	}
	if len(numbers) > raffle.Available() {
		return nil, errs.NewInsufficientTicketsAvailableError(raffle.ID, len(numbers), raffle.Available())
	}

	if err := tickets.ClaimTransaction(ctx, raffle.ID, req.TransactionID); err != nil {
		return nil, err
	}

	existing, err := tickets.FindByNumbers(ctx, raffle.ID, numbers)
	if err != nil {
		return nil, err
	}
	byNumber := make(map[int]*entity.Ticket, len(existing))
	for _, t := range existing {
		byNumber[t.Number] = t
	}

	sale := entity.Sale{
		TransactionID: req.TransactionID,
		Buyer:         req.Buyer,
		Payment:       req.Payment,
		Proof:         req.Proof,
		Price:         raffle.Price,
		PurchasedAt:   e.timeProvider.Now(),
	}

	sold := make([]*entity.Ticket, 0, len(numbers))
	for _, n := range numbers {
		ticket, ok := byNumber[n]
		if ok {
			if err := e.resell(ctx, tickets, ticket, sale); err != nil {
				return nil, err
			}
		} else {
			ticket, err = e.materialize(ctx, tickets, raffle.ID, n, sale)
			if err != nil {
				return nil, err
			}
		}
		sold = append(sold, ticket)
	}

	if err := raffles.IncrementSold(ctx, raffle.ID, len(sold)); err != nil {
		return nil, err
	}
	return sold, nil
}

// resell re-activates a row freed by an earlier cancellation
func (e *Engine) resell(ctx context.Context, tickets persistence.TicketRepository, ticket *entity.Ticket, sale entity.Sale) error {
	if err := ticket.Sell(sale); err != nil {
		return err
	}
	if err := tickets.Transition(ctx, ticket, entity.TicketAvailable); err != nil {
		if errors.Is(err, errs.ErrInvalidStateTransition) {
			return errs.NewNumberError(ticket.RaffleID, ticket.Number, errs.ErrNumberUnavailable)
		}
		return err
	}
	return nil
}

// materialize creates the row of a number that was never sold.
// A concurrent insert of the same number fails on the unique index with ErrNumberUnavailable.
func (e *Engine) materialize(ctx context.Context, tickets persistence.TicketRepository, raffleID uint64, number int, sale entity.Sale) (*entity.Ticket, error) {
	code, err := e.unusedCode(ctx, tickets)
	if err != nil {
		return nil, err
	}
	ticket := entity.NewSoldTicket(raffleID, number, code, sale)
	if err := tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (e *Engine) unusedCode(ctx context.Context, tickets persistence.TicketRepository) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code, err := e.ids.TicketCode()
		if err != nil {
			return "", err
		}
		exists, err := tickets.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errs.ErrTicketCodeCollision
}

// Cancel releases every sold ticket of the transaction and retires its id
func (e *Engine) Cancel(ctx context.Context, transactionID, reason, actor string) (*usecase.CancellationResult, error) {
	if transactionID == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidTransactionID, "transactionId", "is required")
	}

	var result *usecase.CancellationResult
	err := persistence.WithinTransaction(ctx, e.uow, func(txCtx context.Context) error {
		var cancelErr error
		result, cancelErr = e.cancel(txCtx, transactionID, reason, actor)
		return cancelErr
	})
	if err != nil {
		fields := map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		}
		var cerr *errs.CancellationError
		if errors.As(err, &cerr) {
			fields = cerr.LogFields()
		}
		e.logger.Error("Transaction cancellation failed", fields)
		return nil, err
	}

	e.logger.Info("Transaction cancelled", map[string]any{
		"transaction_id":  transactionID,
		"cancellation_id": result.CancellationID,
		"raffle_id":       result.RaffleID,
		"count":           result.Count,
		"reason":          reason,
		"actor":           actor,
	})
	return result, nil
}

func (e *Engine) cancel(ctx context.Context, transactionID, reason, actor string) (*usecase.CancellationResult, error) {
	tickets := e.uow.GetTicketRepository(ctx)

	sold, err := tickets.FindByTransaction(ctx, transactionID, entity.TicketSold)
	if err != nil {
		return nil, err
	}
	if len(sold) == 0 {
		exists, err := tickets.TransactionExists(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: transaction %s has no sold tickets", errs.ErrInvalidStateTransition, transactionID)
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrTransactionNotFound, transactionID)
	}

	now := e.timeProvider.Now()
	cancellationID := entity.CancellationTransactionID(now, transactionID)

	var failed []uint64
	freed := make([]int, 0, len(sold))
	perRaffle := make(map[uint64]int)
	for _, t := range sold {
		if err := t.Cancel(reason, actor, cancellationID, now); err != nil {
			failed = append(failed, t.ID)
			continue
		}
		if err := tickets.Transition(ctx, t, entity.TicketSold); err != nil {
			e.logger.Warn("Ticket could not be cancelled", map[string]any{
				"ticket_id":      t.ID,
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
			failed = append(failed, t.ID)
			continue
		}
		freed = append(freed, t.Number)
		perRaffle[t.RaffleID]++
	}
	if len(failed) > 0 {
		return nil, &errs.CancellationError{TransactionID: transactionID, FailedTicketIDs: failed}
	}

	raffles := e.uow.GetRaffleRepository(ctx)
	for raffleID, count := range perRaffle {
		if err := raffles.DecrementSold(ctx, raffleID, count); err != nil {
			return nil, err
		}
	}

	sort.Ints(freed)
	return &usecase.CancellationResult{
		RaffleID:       sold[0].RaffleID,
		Count:          len(freed),
		FreedNumbers:   freed,
		CancellationID: cancellationID,
	}, nil
}
