package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var heldStates = []string{
	string(entity.TicketSold),
	string(entity.TicketReserved),
	string(entity.TicketWinner),
}

// TicketRepository implements TicketRepository interface using GORM
type TicketRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewTicketRepository creates a new TicketRepository instance
func NewTicketRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TicketRepository {
	return &TicketRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

func encodeCancellation(rec *entity.CancellationRecord) (*datatypes.JSON, error) {
	if rec == nil {
		return nil, nil
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding cancellation record: %s", errs.ErrInternalServer, err.Error())
	}
	doc := datatypes.JSON(raw)
	return &doc, nil
}

func decodeCancellation(doc *datatypes.JSON) (*entity.CancellationRecord, error) {
	if doc == nil || len(*doc) == 0 || string(*doc) == "null" {
		return nil, nil
	}
	var rec entity.CancellationRecord
	if err := json.Unmarshal(*doc, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding cancellation record: %s", errs.ErrInternalServer, err.Error())
	}
	return &rec, nil
}

func ticketToModel(t *entity.Ticket) (model.Ticket, error) {
	cancellation, err := encodeCancellation(t.Cancellation)
	if err != nil {
		return model.Ticket{}, err
	}

	return model.Ticket{
		ID:               t.ID,
		Code:             t.Code,
		RaffleID:         t.RaffleID,
		Number:           t.Number,
		State:            string(t.State),
		BuyerName:        t.Buyer.Name,
		BuyerEmail:       t.Buyer.Email,
		BuyerPhone:       t.Buyer.Phone,
		BuyerCity:        t.Buyer.City,
		BuyerNationalID:  t.Buyer.NationalID,
		Price:            t.Price,
		PurchasedAt:      t.PurchasedAt,
		PaymentMethod:    t.Payment.MethodCode,
		PaymentReference: t.Payment.Reference,
		TransactionID:    t.TransactionID,
		ProofURL:         t.Proof.URL,
		ProofStorageID:   t.Proof.StorageID,
		Verified:         t.Verified,
		VerifiedBy:       t.VerifiedBy,
		VerifiedAt:       t.VerifiedAt,
		Cancellation:     cancellation,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}, nil
}

func ticketFromModel(m *model.Ticket) (*entity.Ticket, error) {
	cancellation, err := decodeCancellation(m.Cancellation)
	if err != nil {
		return nil, err
	}

	return &entity.Ticket{
		ID:       m.ID,
		Code:     m.Code,
		Number:   m.Number,
		RaffleID: m.RaffleID,
		State:    entity.TicketState(m.State),
		Buyer: entity.Buyer{
			Name:       m.BuyerName,
			Email:      m.BuyerEmail,
			Phone:      m.BuyerPhone,
			City:       m.BuyerCity,
			NationalID: m.BuyerNationalID,
		},
		Price:       m.Price,
		PurchasedAt: m.PurchasedAt,
		Payment: entity.PaymentInfo{
			MethodCode: m.PaymentMethod,
			Reference:  m.PaymentReference,
		},
		TransactionID: m.TransactionID,
		Proof: entity.ProofRef{
			URL:       m.ProofURL,
			StorageID: m.ProofStorageID,
		},
		Verified:     m.Verified,
		VerifiedBy:   m.VerifiedBy,
		VerifiedAt:   m.VerifiedAt,
		Cancellation: cancellation,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

func ticketsFromModels(rows []model.Ticket) ([]*entity.Ticket, error) {
	tickets := make([]*entity.Ticket, 0, len(rows))
	for i := range rows {
		t, err := ticketFromModel(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

// mutableColumns lists every column a sale, verification, cancellation or draw may change
func mutableColumns(m *model.Ticket) map[string]any {
	return map[string]any{
		"state":             m.State,
		"buyer_name":        m.BuyerName,
		"buyer_email":       m.BuyerEmail,
		"buyer_phone":       m.BuyerPhone,
		"buyer_city":        m.BuyerCity,
		"buyer_national_id": m.BuyerNationalID,
		"price":             m.Price,
		"purchased_at":      m.PurchasedAt,
		"payment_method":    m.PaymentMethod,
		"payment_reference": m.PaymentReference,
		"transaction_id":    m.TransactionID,
		"proof_url":         m.ProofURL,
		"proof_storage_id":  m.ProofStorageID,
		"verified":          m.Verified,
		"verified_by":       m.VerifiedBy,
		"verified_at":       m.VerifiedAt,
		"cancellation":      m.Cancellation,
		"updated_at":        m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TicketRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return mapDatabaseError(r.logger, r.errorMapper, EntityTypeTicket, operation, err, fields)
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(ctx context.Context, id uint64) (*entity.Ticket, error) {
	var m model.Ticket
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting ticket", err, map[string]any{"ticket_id": id})
	}
	return ticketFromModel(&m)
}

// FindByNumbers returns the existing rows for the given numbers ordered by number
func (r *TicketRepository) FindByNumbers(ctx context.Context, raffleID uint64, numbers []int) ([]*entity.Ticket, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	var rows []model.Ticket
	err := r.db.WithContext(ctx).
		Where("raffle_id = ? AND number IN ?", raffleID, numbers).
		Order("number asc").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("finding tickets by number", err, map[string]any{
			"raffle_id": raffleID,
			"numbers":   numbers,
		})
	}
	return ticketsFromModels(rows)
}

// Create inserts a freshly materialized ticket and sets its ID
func (r *TicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	m, err := ticketToModel(ticket)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		mapped := r.handleDatabaseError("creating ticket", err, map[string]any{
			"raffle_id": ticket.RaffleID,
			"number":    ticket.Number,
		})
		if errors.Is(mapped, errs.ErrNumberUnavailable) {
			return errs.NewNumberError(ticket.RaffleID, ticket.Number, errs.ErrNumberUnavailable)
		}
		return mapped
	}

	ticket.ID = m.ID
	return nil
}

// Transition writes the ticket only if the stored row is still in state from
func (r *TicketRepository) Transition(ctx context.Context, ticket *entity.Ticket, from entity.TicketState) error {
	m, err := ticketToModel(ticket)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ? AND state = ?", ticket.ID, string(from)).
		Updates(mutableColumns(&m))

	if result.Error != nil {
		return r.handleDatabaseError("transitioning ticket", result.Error, map[string]any{
			"ticket_id": ticket.ID,
			"from":      from,
			"to":        ticket.State,
		})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Ticket changed state concurrently", map[string]any{
			"ticket_id": ticket.ID,
			"number":    ticket.Number,
			"expected":  from,
		})
		return fmt.Errorf("%w: ticket %d is no longer %s", errs.ErrInvalidStateTransition, ticket.ID, from)
	}
	return nil
}

// Save writes every mutable field of the ticket
func (r *TicketRepository) Save(ctx context.Context, ticket *entity.Ticket) error {
	m, err := ticketToModel(ticket)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ?", ticket.ID).
		Updates(mutableColumns(&m))

	if result.Error != nil {
		return r.handleDatabaseError("saving ticket", result.Error, map[string]any{"ticket_id": ticket.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTicketNotFound
	}
	return nil
}

// CodeExists reports whether a ticket already uses code
func (r *TicketRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Ticket{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking ticket code", err, map[string]any{"code": code})
	}
	return count > 0, nil
}

// IsNumberHeld reports whether the number is sold, reserved or won
func (r *TicketRepository) IsNumberHeld(ctx context.Context, raffleID uint64, number int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("raffle_id = ? AND number = ? AND state IN ?", raffleID, number, heldStates).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking number", err, map[string]any{
			"raffle_id": raffleID,
			"number":    number,
		})
	}
	return count > 0, nil
}

// OccupiedNumbers returns the held numbers of a raffle in ascending order
func (r *TicketRepository) OccupiedNumbers(ctx context.Context, raffleID uint64) ([]int, error) {
	numbers := []int{}
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("raffle_id = ? AND state IN ?", raffleID, heldStates).
		Order("number asc").
		Pluck("number", &numbers).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing occupied numbers", err, map[string]any{"raffle_id": raffleID})
	}
	return numbers, nil
}

// FindByTransaction returns the tickets of a transaction ordered by number
func (r *TicketRepository) FindByTransaction(ctx context.Context, transactionID string, states ...entity.TicketState) ([]*entity.Ticket, error) {
	q := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID)
	if len(states) > 0 {
		values := make([]string, len(states))
		for i, s := range states {
			values[i] = string(s)
		}
		q = q.Where("state IN ?", values)
	}

	var rows []model.Ticket
	if err := q.Order("number asc").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("finding transaction tickets", err, map[string]any{
			"transaction_id": transactionID,
		})
	}
	return ticketsFromModels(rows)
}

// ClaimTransaction inserts the transaction id into sale_transactions. Concurrent claims of the
// same id are settled by the primary key.
func (r *TicketRepository) ClaimTransaction(ctx context.Context, raffleID uint64, transactionID string) error {
	claim := model.SaleTransaction{
		TransactionID: transactionID,
		RaffleID:      raffleID,
		CreatedAt:     r.timeProvider.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&claim).Error; err != nil {
		mapped := r.handleDatabaseError("claiming transaction id", err, map[string]any{
			"raffle_id":      raffleID,
			"transaction_id": transactionID,
		})
		if errors.Is(mapped, errs.ErrDuplicateTransaction) {
			return errs.NewDuplicateTransactionError(transactionID)
		}
		return mapped
	}
	return nil
}

// TransactionExists reports whether any ticket carries the transaction id
func (r *TicketRepository) TransactionExists(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking transaction id", err, map[string]any{
			"transaction_id": transactionID,
		})
	}
	return count > 0, nil
}

// ListByRaffle returns a filtered page of the tickets of a raffle ordered by number
func (r *TicketRepository) ListByRaffle(ctx context.Context, raffleID uint64, filter persistence.TicketFilter, page entity.Pagination) (entity.Page[*entity.Ticket], error) {
	page = page.Normalize()
	result := entity.Page[*entity.Ticket]{Page: page.Page, PageSize: page.PageSize}

	q := r.db.WithContext(ctx).Model(&model.Ticket{}).Where("raffle_id = ?", raffleID)
	if filter.State != "" {
		q = q.Where("state = ?", string(filter.State))
	}
	if filter.Verified != nil {
		q = q.Where("verified = ?", *filter.Verified)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		q = q.Where("LOWER(buyer_city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}

	return r.page(q.Order("number asc"), page, result, "listing raffle tickets")
}

// ListUnverified returns sold, unverified tickets oldest purchase first
func (r *TicketRepository) ListUnverified(ctx context.Context, raffleID uint64, page entity.Pagination) (entity.Page[*entity.Ticket], error) {
	page = page.Normalize()
	result := entity.Page[*entity.Ticket]{Page: page.Page, PageSize: page.PageSize}

	q := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("state = ? AND verified = ?", string(entity.TicketSold), false)
	if raffleID != 0 {
		q = q.Where("raffle_id = ?", raffleID)
	}

	return r.page(q.Order("purchased_at asc").Order("id asc"), page, result, "listing unverified tickets")
}

func (r *TicketRepository) page(q *gorm.DB, page entity.Pagination, result entity.Page[*entity.Ticket], operation string) (entity.Page[*entity.Ticket], error) {
	if err := q.Count(&result.Total).Error; err != nil {
		return result, r.handleDatabaseError(operation, err, nil)
	}

	var rows []model.Ticket
	if err := paginate(q, page).Find(&rows).Error; err != nil {
		return result, r.handleDatabaseError(operation, err, nil)
	}

	items, err := ticketsFromModels(rows)
	if err != nil {
		return result, err
	}
	result.Items = items
	return result, nil
}

func (r *TicketRepository) list(ctx context.Context, operation string, fields map[string]any, scope func(*gorm.DB) *gorm.DB) ([]*entity.Ticket, error) {
	var rows []model.Ticket
	if err := scope(r.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, fields)
	}
	return ticketsFromModels(rows)
}

// ListHeld returns held tickets of a raffle ordered by purchase time
func (r *TicketRepository) ListHeld(ctx context.Context, raffleID uint64) ([]*entity.Ticket, error) {
	return r.list(ctx, "listing held tickets", map[string]any{"raffle_id": raffleID}, func(db *gorm.DB) *gorm.DB {
		return db.Where("raffle_id = ? AND state IN ?", raffleID, heldStates).
			Order("purchased_at asc").Order("id asc")
	})
}

// ListByEmail returns held tickets bought with the given email, newest purchase first
func (r *TicketRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Ticket, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.list(ctx, "listing tickets by email", map[string]any{"email": email}, func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(buyer_email) = ? AND state IN ?", email, heldStates).
			Order("purchased_at desc").Order("number asc")
	})
}

// ListCancelled returns tickets of a raffle that carry a cancellation record
func (r *TicketRepository) ListCancelled(ctx context.Context, raffleID uint64) ([]*entity.Ticket, error) {
	return r.list(ctx, "listing cancelled tickets", map[string]any{"raffle_id": raffleID}, func(db *gorm.DB) *gorm.DB {
		return db.Where("raffle_id = ? AND cancellation IS NOT NULL", raffleID).
			Order("number asc")
	})
}

// ListEligible returns sold and verified tickets of a raffle ordered by ID
func (r *TicketRepository) ListEligible(ctx context.Context, raffleID uint64) ([]*entity.Ticket, error) {
	return r.list(ctx, "listing draw pool", map[string]any{"raffle_id": raffleID}, func(db *gorm.DB) *gorm.DB {
		return db.Where("raffle_id = ? AND state = ? AND verified = ?", raffleID, string(entity.TicketSold), true).
			Order("id asc")
	})
}

// CountHeld counts sold and winner tickets of a raffle
func (r *TicketRepository) CountHeld(ctx context.Context, raffleID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("raffle_id = ? AND state IN ?", raffleID, []string{string(entity.TicketSold), string(entity.TicketWinner)}).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting held tickets", err, map[string]any{"raffle_id": raffleID})
	}
	return count, nil
}
