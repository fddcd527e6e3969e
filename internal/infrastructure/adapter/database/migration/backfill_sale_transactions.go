package migration

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BackfillSaleTransactions claims the transaction ids already carried by tickets of older schemas
type BackfillSaleTransactions struct {
	db     *gorm.DB
	logger coreport.Logger
	now    func() time.Time
}

// NewBackfillSaleTransactions creates a new migration instance
func NewBackfillSaleTransactions(db *gorm.DB, logger coreport.Logger, now func() time.Time) *BackfillSaleTransactions {
	return &BackfillSaleTransactions{db: db, logger: logger, now: now}
}

// Run executes the migration
func (m *BackfillSaleTransactions) Run(ctx context.Context) error {
	var rows []struct {
		TransactionID string
		RaffleID      uint64
	}
	err := m.db.WithContext(ctx).Model(&model.Ticket{}).
		Select("transaction_id, MIN(raffle_id) AS raffle_id").
		Where("transaction_id <> ''").
		Group("transaction_id").
		Scan(&rows).Error
	if err != nil {
		m.logger.Error("Failed to read ticket transaction ids", map[string]any{"error": err.Error()})
		return err
	}
	if len(rows) == 0 {
		m.logger.Debug("No transaction ids to backfill", nil)
		return nil
	}

	now := m.now()
	claims := make([]model.SaleTransaction, len(rows))
	for i, r := range rows {
		claims[i] = model.SaleTransaction{TransactionID: r.TransactionID, RaffleID: r.RaffleID, CreatedAt: now}
	}

	err = m.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(claims, 500).Error
	if err != nil {
		m.logger.Error("Failed to backfill sale transactions", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Backfilled sale transactions", map[string]any{"count": len(claims)})
	return nil
}
