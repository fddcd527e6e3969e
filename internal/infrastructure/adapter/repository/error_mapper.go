package repository

import (
	"errors"
	"fmt"
	"strings"

	domainErr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	EntityTypeRaffle        EntityType = "raffle"
	EntityTypeTicket        EntityType = "ticket"
	EntityTypeTransaction   EntityType = "transaction"
	EntityTypePrize         EntityType = "prize"
	EntityTypeWinner        EntityType = "winner"
	EntityTypeActiveRaffle  EntityType = "active_raffle"
	EntityTypePaymentMethod EntityType = "payment_method"
	EntityTypeRaffleLock    EntityType = "raffle_lock"
)

// uniqueIndexErrors maps the unique indexes created by the migrations to domain errors.
// Postgres reports the index name, SQLite reports table.column.
var uniqueIndexErrors = []struct {
	markers []string
	err     error
}{
	{[]string{"idx_tickets_code", "tickets.code"}, domainErr.ErrTicketCodeCollision},
	{[]string{"idx_tickets_raffle_number", "tickets.number"}, domainErr.ErrNumberUnavailable},
	{[]string{"idx_prizes_raffle_position", "prizes.position"}, domainErr.ErrDuplicatePrizePosition},
	{[]string{"idx_winners_ticket", "winners.ticket_id"}, domainErr.ErrWinnersAlreadyExist},
	{[]string{"idx_payment_methods_code", "payment_methods.code"}, domainErr.ErrDuplicatePaymentMethod},
	{[]string{"sale_transactions_pkey", "sale_transactions.transaction_id"}, domainErr.ErrDuplicateTransaction},
}

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier()}
}

// MapError maps a database error raised while working on entityType to a domain error
func (m *ErrorMapper) MapError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.notFound(entityType)
	}

	if isContextError(err) {
		return fmt.Errorf("%w: %s operation timed out: %v", domainErr.ErrDatabaseConnection, entityType, err)
	}

	switch m.classifier.Classify(err) {
	case DuplicateKeyError:
		return m.MapUniqueViolation(err, entityType)
	case LockError:
		return fmt.Errorf("%w: %v", domainErr.ErrConcurrentUpdate, err)
	case TransientError, ConnectionError:
		return fmt.Errorf("%w: %v", domainErr.ErrDatabaseConnection, err)
	case ConstraintError:
		return fmt.Errorf("%w: %v", domainErr.ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %v", domainErr.ErrInternalServer, err)
}

// MapUniqueViolation resolves which unique index rejected a write
func (m *ErrorMapper) MapUniqueViolation(err error, entityType EntityType) error {
	msg := strings.ToLower(err.Error())
	for _, candidate := range uniqueIndexErrors {
		for _, marker := range candidate.markers {
			if strings.Contains(msg, marker) {
				return candidate.err
			}
		}
	}

	switch entityType {
	case EntityTypeTicket:
		return domainErr.ErrNumberUnavailable
	case EntityTypePrize:
		return domainErr.ErrDuplicatePrizePosition
	case EntityTypeWinner:
		return domainErr.ErrWinnersAlreadyExist
	case EntityTypePaymentMethod:
		return domainErr.ErrDuplicatePaymentMethod
	}
	return fmt.Errorf("%w: %v", domainErr.ErrConstraintViolation, err)
}

func (m *ErrorMapper) notFound(entityType EntityType) error {
	switch entityType {
	case EntityTypeRaffle:
		return domainErr.ErrRaffleNotFound
	case EntityTypeTicket:
		return domainErr.ErrTicketNotFound
	case EntityTypeTransaction:
		return domainErr.ErrTransactionNotFound
	case EntityTypePrize:
		return domainErr.ErrPrizeNotFound
	case EntityTypeWinner:
		return domainErr.ErrWinnerNotFound
	case EntityTypePaymentMethod:
		return domainErr.ErrPaymentMethodNotFound
	default:
		return domainErr.ErrNotFound
	}
}
