package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AddTicketCancellation adds the cancellation snapshot column to tickets created by schema 1.0.0
type AddTicketCancellation struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddTicketCancellation creates a new migration instance
func NewAddTicketCancellation(db *gorm.DB, logger coreport.Logger) *AddTicketCancellation {
	return &AddTicketCancellation{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddTicketCancellation) Run(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()

	if migrator.HasColumn(&model.Ticket{}, "Cancellation") {
		m.logger.Debug("tickets.cancellation already present", nil)
		return nil
	}

	m.logger.Info("Adding cancellation column to tickets table", nil)
	if err := migrator.AddColumn(&model.Ticket{}, "Cancellation"); err != nil {
		m.logger.Error("Failed to add cancellation column", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added cancellation column to tickets table", nil)
	return nil
}
