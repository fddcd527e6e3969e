package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Service drives purchases and the verify/cancel transitions of their transactions
type Service struct {
	engine       usecase.AllocationEngine
	registry     usecase.PaymentMethodRegistry
	storage      gateway.ProofStorage
	notifier     gateway.Notifier
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	validator      *Validator
	queue          *RaffleQueue
	queueSize      int
	maxNumbers     int
	requestTimeout time.Duration
}

var _ usecase.PurchaseUseCase = (*Service)(nil)

// Option customises a Service
type Option func(*Service)

// WithRaffleQueue serializes sales per raffle through queues of the given size
func WithRaffleQueue(size int) Option {
	return func(s *Service) {
		s.queueSize = size
	}
}

// WithMaxNumbers caps the numbers of a single purchase
func WithMaxNumbers(n int) Option {
	return func(s *Service) {
		s.maxNumbers = n
	}
}

// WithRequestTimeout bounds the time a purchase may spend in storage
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.requestTimeout = d
	}
}

// NewService creates a new purchase service
func NewService(
	engine usecase.AllocationEngine,
	registry usecase.PaymentMethodRegistry,
	storage gateway.ProofStorage,
	notifier gateway.Notifier,
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		engine:       engine,
		registry:     registry,
		storage:      storage,
		notifier:     notifier,
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.validator = NewValidator(s.maxNumbers)
	if s.queueSize > 0 {
		s.queue = NewRaffleQueue(logger, s.queueSize, engine.AllocateAndSell)
	}
	return s
}

// Purchase validates the request, stores the proof, and sells the numbers.
// A stored proof is deleted again when the sale fails.
func (s *Service) Purchase(ctx context.Context, req usecase.PurchaseRequest) (*usecase.PurchaseResult, error) {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	req.Buyer = req.Buyer.Normalize()
	s.logger.Debug("Processing purchase", map[string]any{
		"raffle_id":      req.RaffleID,
		"numbers":        req.Numbers,
		"payment_method": req.PaymentMethod,
		"email":          req.Buyer.Email,
	})

	if err := s.validator.ValidateRequest(req); err != nil {
		s.logRefusal(req, err)
		return nil, err
	}

	method, err := s.paymentMethod(ctx, req)
	if err != nil {
		s.logRefusal(req, err)
		return nil, err
	}

	transactionID, err := s.transactionID(ctx, req.TransactionID)
	if err != nil {
		s.logRefusal(req, err)
		return nil, err
	}

	var proof entity.ProofRef
	if req.Proof != nil {
		proof, err = s.storage.Store(ctx, *req.Proof)
		if err != nil {
			s.logger.Error("Failed to store proof of payment", map[string]any{
				"raffle_id":      req.RaffleID,
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
			return nil, err
		}
	}

	alloc := usecase.AllocationRequest{
		RaffleID:      req.RaffleID,
		Numbers:       req.Numbers,
		TransactionID: transactionID,
		Buyer:         req.Buyer,
		Payment: entity.PaymentInfo{
			MethodCode: method.Code,
			Reference:  req.PaymentReference,
		},
		Proof: proof,
	}

	tickets, err := s.sell(ctx, alloc)
	if err != nil {
		s.compensate(ctx, proof)

		perr := &errs.PurchaseError{
			RaffleID:      req.RaffleID,
			TransactionID: transactionID,
			Numbers:       req.Numbers,
			Reason:        "allocation failed",
			Err:           err,
		}
		if errs.IsConflictError(err) || errs.IsValidationError(err) || errs.IsNotFoundError(err) {
			s.logger.Warn("Purchase refused", perr.LogFields())
		} else {
			s.logger.Error("Purchase failed", perr.LogFields())
		}
		return nil, err
	}

	total := decimal.Zero
	for _, t := range tickets {
		total = total.Add(t.Price)
	}

	s.logger.Info("Purchase completed", map[string]any{
		"raffle_id":      req.RaffleID,
		"transaction_id": transactionID,
		"numbers":        req.Numbers,
		"payment_method": method.Code,
		"total":          total.StringFixed(2),
	})

	return &usecase.PurchaseResult{
		TransactionID: transactionID,
		Tickets:       tickets,
		Total:         total,
	}, nil
}

// paymentMethod resolves the requested method and enforces its evidence rules.
// An unreachable or empty registry refuses the purchase.
func (s *Service) paymentMethod(ctx context.Context, req usecase.PurchaseRequest) (entity.PaymentMethod, error) {
	methods, err := s.registry.ListActiveMethods(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrPaymentMethodsUnavailable) {
			return entity.PaymentMethod{}, err
		}
		return entity.PaymentMethod{}, fmt.Errorf("%w: %v", errs.ErrPaymentMethodsUnavailable, err)
	}
	if methods.Len() == 0 {
		return entity.PaymentMethod{}, fmt.Errorf("%w: no active payment methods", errs.ErrPaymentMethodsUnavailable)
	}

	method, ok := methods.Find(req.PaymentMethod)
	if !ok {
		return entity.PaymentMethod{}, errs.NewValidationError(errs.ErrUnknownPaymentMethod, "paymentMethod", fmt.Sprintf("%q is not accepted", req.PaymentMethod))
	}
	if method.RequiresProof && req.Proof == nil {
		return entity.PaymentMethod{}, errs.NewValidationError(errs.ErrProofRequired, "proof", "is required for "+method.Code)
	}
	if method.RequiresReference && req.PaymentReference == "" {
		return entity.PaymentMethod{}, errs.NewValidationError(errs.ErrPaymentReferenceRequired, "paymentReference", "is required for "+method.Code)
	}
	return method, nil
}

// transactionID returns the client id when unused, or a fresh one when the client sent none
func (s *Service) transactionID(ctx context.Context, requested string) (string, error) {
	if requested == "" {
		return s.ids.TransactionID(), nil
	}

	exists, err := s.uow.GetTicketRepository(ctx).TransactionExists(ctx, requested)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errs.NewDuplicateTransactionError(requested)
	}
	return requested, nil
}

func (s *Service) sell(ctx context.Context, req usecase.AllocationRequest) ([]*entity.Ticket, error) {
	if s.queue != nil {
		return s.queue.Enqueue(ctx, req)
	}
	return s.engine.AllocateAndSell(ctx, req)
}

// compensate deletes a stored proof after a failed sale. Its failure is only logged.
func (s *Service) compensate(ctx context.Context, proof entity.ProofRef) {
	if proof.StorageID == "" {
		return
	}
	if err := s.storage.Delete(context.WithoutCancel(ctx), proof.StorageID); err != nil {
		cerr := &errs.CompensationError{StorageID: proof.StorageID, Err: err}
		s.logger.Error("Failed to delete orphaned proof", cerr.LogFields())
		return
	}
	s.logger.Info("Deleted orphaned proof", map[string]any{"storage_id": proof.StorageID})
}

func (s *Service) logRefusal(req usecase.PurchaseRequest, err error) {
	fields := map[string]any{
		"raffle_id":      req.RaffleID,
		"payment_method": req.PaymentMethod,
		"error":          err.Error(),
	}
	var verr *errs.ValidationError
	if errors.As(err, &verr) {
		fields["field"] = verr.Field
	}
	if errs.IsValidationError(err) || errs.IsConflictError(err) {
		s.logger.Warn("Purchase rejected", fields)
		return
	}
	s.logger.Error("Purchase could not be validated", fields)
}

// VerifyTransaction marks every ticket of the transaction verified and sends one notification.
// Verifying an already verified transaction changes nothing and sends nothing.
func (s *Service) VerifyTransaction(ctx context.Context, transactionID, verifiedBy string) ([]*entity.Ticket, error) {
	if transactionID == "" {
		return nil, errs.NewValidationError(errs.ErrInvalidTransactionID, "transactionId", "is required")
	}

	var (
		tickets []*entity.Ticket
		raffle  *entity.Raffle
		changed int
	)
	err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		repo := s.uow.GetTicketRepository(txCtx)

		var err error
		tickets, err = repo.FindByTransaction(txCtx, transactionID, entity.TicketSold, entity.TicketWinner)
		if err != nil {
			return err
		}
		if len(tickets) == 0 {
			return fmt.Errorf("%w: %s", errs.ErrTransactionNotFound, transactionID)
		}

		now := s.timeProvider.Now()
		for _, t := range tickets {
			from := t.State
			updated, err := t.Verify(verifiedBy, now)
			if err != nil {
				return err
			}
			if !updated {
				continue
			}
			if err := repo.Transition(txCtx, t, from); err != nil {
				return err
			}
			changed++
		}

		raffle, err = s.uow.GetRaffleRepository(txCtx).GetByID(txCtx, tickets[0].RaffleID)
		return err
	})
	if err != nil {
		s.logger.Warn("Transaction verification failed", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		return nil, err
	}

	if changed == 0 {
		s.logger.Info("Transaction already verified", map[string]any{"transaction_id": transactionID})
		return tickets, nil
	}

	s.logger.Info("Transaction verified", map[string]any{
		"transaction_id": transactionID,
		"verified_by":    verifiedBy,
		"tickets":        changed,
	})

	if err := s.notifier.NotifyTransactionVerified(ctx, transactionID, tickets, raffle); err != nil {
		s.logger.Warn("Failed to send verification notification", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
	}
	return tickets, nil
}

// CancelTransaction releases the tickets of a transaction
func (s *Service) CancelTransaction(ctx context.Context, transactionID, reason, actor string) (*usecase.CancellationResult, error) {
	s.logger.Debug("Cancelling transaction", map[string]any{
		"transaction_id": transactionID,
		"actor":          actor,
	})
	return s.engine.Cancel(ctx, transactionID, reason, actor)
}

// VerifyTicket verifies a single ticket
func (s *Service) VerifyTicket(ctx context.Context, ticketID uint64, verifiedBy string) (*entity.Ticket, error) {
	repo := s.uow.GetTicketRepository(ctx)

	ticket, err := repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	from := ticket.State
	updated, err := ticket.Verify(verifiedBy, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	if !updated {
		return ticket, nil
	}
	if err := repo.Transition(ctx, ticket, from); err != nil {
		return nil, err
	}

	s.logger.Info("Ticket verified", map[string]any{
		"ticket_id":   ticketID,
		"verified_by": verifiedBy,
	})
	return ticket, nil
}

// ReplaceProof stores a new proof for every ticket of the ticket's transaction.
// The previous file is deleted only once the new reference is persisted.
func (s *Service) ReplaceProof(ctx context.Context, ticketID uint64, file gateway.ProofFile) (*entity.Ticket, error) {
	ticket, err := s.uow.GetTicketRepository(ctx).GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !ticket.IsHeld() {
		return nil, fmt.Errorf("%w: ticket %d is %s", errs.ErrInvalidStateTransition, ticketID, ticket.State)
	}

	proof, err := s.storage.Store(ctx, file)
	if err != nil {
		return nil, err
	}

	previous := ticket.Proof
	var updated *entity.Ticket
	err = persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
		repo := s.uow.GetTicketRepository(txCtx)

		siblings, err := repo.FindByTransaction(txCtx, ticket.TransactionID, entity.TicketSold, entity.TicketWinner)
		if err != nil {
			return err
		}
		now := s.timeProvider.Now()
		for _, t := range siblings {
			t.Proof = proof
			t.UpdatedAt = now
			if err := repo.Transition(txCtx, t, t.State); err != nil {
				return err
			}
			if t.ID == ticketID {
				updated = t
			}
		}
		if updated == nil {
			return fmt.Errorf("%w: ticket %d changed while replacing its proof", errs.ErrConcurrentUpdate, ticketID)
		}
		return nil
	})
	if err != nil {
		s.compensate(ctx, proof)
		return nil, err
	}

	s.logger.Info("Proof replaced", map[string]any{
		"ticket_id":      ticketID,
		"transaction_id": ticket.TransactionID,
		"storage_id":     proof.StorageID,
	})

	if previous.StorageID != "" && previous.StorageID != proof.StorageID {
		if err := s.storage.Delete(ctx, previous.StorageID); err != nil {
			s.logger.Warn("Failed to delete replaced proof", map[string]any{
				"storage_id": previous.StorageID,
				"error":      err.Error(),
			})
		}
	}
	return updated, nil
}

// Shutdown drains the per-raffle queues
func (s *Service) Shutdown() {
	if s.queue != nil {
		s.queue.Shutdown()
	}
}
