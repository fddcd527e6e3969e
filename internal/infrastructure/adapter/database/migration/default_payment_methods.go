package migration

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeded inactive. Account details are filled in by an administrator before activation.
var defaultPaymentMethods = []model.PaymentMethod{
	{Code: "transferencia", Name: "Transferencia bancaria", SortOrder: 1},
	{Code: "pago_movil", Name: "Pago Móvil", SortOrder: 2},
	{Code: "zelle", Name: "Zelle", SortOrder: 3},
	{Code: "binance", Name: "Binance Pay", SortOrder: 4},
}

// DefaultPaymentMethods seeds the payment methods every installation starts with
type DefaultPaymentMethods struct {
	db     *gorm.DB
	logger coreport.Logger
	now    func() time.Time
}

// NewDefaultPaymentMethods creates a new seeding migration
func NewDefaultPaymentMethods(db *gorm.DB, logger coreport.Logger, now func() time.Time) *DefaultPaymentMethods {
	return &DefaultPaymentMethods{
		db:     db,
		logger: logger,
		now:    now,
	}
}

// Run inserts the default methods, leaving existing codes untouched
func (m *DefaultPaymentMethods) Run(ctx context.Context) error {
	now := m.now()

	rows := make([]model.PaymentMethod, len(defaultPaymentMethods))
	for i, method := range defaultPaymentMethods {
		method.Active = false
		method.RequiresProof = true
		method.RequiresReference = true
		method.Data = datatypes.JSONMap{}
		method.CreatedAt = now
		method.UpdatedAt = now
		rows[i] = method
	}

	result := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		m.logger.Error("Failed to seed default payment methods", map[string]any{
			"error": result.Error.Error(),
		})
		return result.Error
	}

	m.logger.Info("Seeded default payment methods", map[string]any{
		"inserted": result.RowsAffected,
	})
	return nil
}
