package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainErr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapperMapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name       string
		err        error
		entityType EntityType
		want       error
	}{
		{"Nil", nil, EntityTypeTicket, nil},
		{"Raffle not found", gorm.ErrRecordNotFound, EntityTypeRaffle, domainErr.ErrRaffleNotFound},
		{"Prize not found", gorm.ErrRecordNotFound, EntityTypePrize, domainErr.ErrPrizeNotFound},
		{"Active raffle not found", gorm.ErrRecordNotFound, EntityTypeActiveRaffle, domainErr.ErrNotFound},
		{"Deadline", context.DeadlineExceeded, EntityTypeRaffle, domainErr.ErrDatabaseConnection},
		{
			"Postgres ticket number index",
			errors.New(`ERROR: duplicate key value violates unique constraint "idx_tickets_raffle_number" (SQLSTATE 23505)`),
			EntityTypeTicket, domainErr.ErrNumberUnavailable,
		},
		{
			"Postgres ticket code index",
			errors.New(`ERROR: duplicate key value violates unique constraint "idx_tickets_code" (SQLSTATE 23505)`),
			EntityTypeTicket, domainErr.ErrTicketCodeCollision,
		},
		{
			"SQLite prize position",
			errors.New("UNIQUE constraint failed: prizes.raffle_id, prizes.position (2067)"),
			EntityTypePrize, domainErr.ErrDuplicatePrizePosition,
		},
		{
			"SQLite winner ticket",
			errors.New("UNIQUE constraint failed: winners.ticket_id (2067)"),
			EntityTypeWinner, domainErr.ErrWinnersAlreadyExist,
		},
		{
			"Unknown index falls back by entity",
			errors.New(`duplicate key value violates unique constraint "something_else"`),
			EntityTypePaymentMethod, domainErr.ErrDuplicatePaymentMethod,
		},
		{"Serialization failure", errors.New("ERROR: could not serialize access due to concurrent update"), EntityTypeTicket, domainErr.ErrConcurrentUpdate},
		{"SQLite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), EntityTypeRaffle, domainErr.ErrConcurrentUpdate},
		{"Connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), EntityTypeRaffle, domainErr.ErrDatabaseConnection},
		{"Not null", errors.New(`null value in column "title" violates not-null constraint`), EntityTypeRaffle, domainErr.ErrConstraintViolation},
		{"Anything else", errors.New("syntax error at or near"), EntityTypeRaffle, domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapper.MapError(tc.err, tc.entityType)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, DuplicateKeyError, c.Classify(errors.New("UNIQUE constraint failed: tickets.code")))
	assert.Equal(t, LockError, c.Classify(errors.New("deadlock detected")))
	assert.Equal(t, TransientError, c.Classify(fmt.Errorf("read: %w", errors.New("connection reset by peer"))))
	assert.Equal(t, ErrorType(""), c.Classify(errors.New("boom")))
	assert.True(t, isContextError(fmt.Errorf("query: %w", context.Canceled)))
}
