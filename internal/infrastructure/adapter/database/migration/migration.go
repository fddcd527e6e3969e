package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.2.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// NewMigrationManagerWithTimeProvider creates a new migration manager with time provider
func NewMigrationManagerWithTimeProvider(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := NewMigrationManager(db, logger)
	m.timeProvider = timeProvider
	return m
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	ctx := context.Background()

	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	m.logger.Info("Current database version", map[string]any{
		"version": currentVersion,
	})

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.runVersionedMigrations(ctx, currentVersion); err != nil {
		m.logger.Error("Failed to run versioned migrations", map[string]any{
			"error":           err.Error(),
			"current_version": currentVersion,
			"target_version":  CurrentSchemaVersion,
		})
		return err
	}

	// Uniqueness guarantees live here, not in model tags, so every dialect gets the same names
	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.advancedIndexMgr.CreateAdvancedIndexes(); err != nil {
		m.logger.Error("Failed to create advanced indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.advancedIndexMgr.CreatePerformanceTweaks(); err != nil {
		m.logger.Error("Failed to apply performance tweaks", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Raffle schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

func (m *MigrationManager) now() time.Time {
	if m.timeProvider != nil {
		return m.timeProvider.Now()
	}
	return time.Now()
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.Raffle{},
		&model.Ticket{},
		&model.Prize{},
		&model.Winner{},
		&model.ActiveRaffle{},
		&model.PaymentMethod{},
		&model.RaffleLock{},
		&model.SaleTransaction{},
	)
}

// runVersionedMigrations runs migrations specific to version transitions
func (m *MigrationManager) runVersionedMigrations(ctx context.Context, currentVersion string) error {
	m.logger.Info("Running versioned migrations", map[string]any{
		"from": currentVersion,
		"to":   CurrentSchemaVersion,
	})

	if currentVersion == "" {
		return m.runBaseMigrations(ctx)
	}

	switch currentVersion {
	case "1.0.0":
		if err := m.migrateFrom1_0_0To1_1_0(ctx); err != nil {
			return err
		}
		fallthrough
	case "1.1.0":
		if err := m.migrateFrom1_1_0To1_2_0(ctx); err != nil {
			return err
		}
	}

	return nil
}

// runBaseMigrations runs the base migrations for a new database
func (m *MigrationManager) runBaseMigrations(ctx context.Context) error {
	m.logger.Info("Running base migrations", nil)

	return NewDefaultPaymentMethods(m.db, m.logger, m.now).Run(ctx)
}

// migrateFrom1_0_0To1_1_0 adds the cancellation snapshot column to tickets
func (m *MigrationManager) migrateFrom1_0_0To1_1_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.0.0 to v1.1.0", nil)

	return NewAddTicketCancellation(m.db, m.logger).Run(ctx)
}

// migrateFrom1_1_0To1_2_0 claims the transaction ids of existing tickets
func (m *MigrationManager) migrateFrom1_1_0To1_2_0(ctx context.Context) error {
	m.logger.Info("Migrating from v1.1.0 to v1.2.0", nil)

	return NewBackfillSaleTransactions(m.db, m.logger, m.now).Run(ctx)
}

// createIndexes creates basic database indexes
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	statements := []string{
		// One row per number and raffle. Resale reuses the row.
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_raffle_number ON tickets (raffle_id, number)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_code ON tickets (code)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_prizes_raffle_position ON prizes (raffle_id, position)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_winners_ticket ON winners (ticket_id)",
		"CREATE INDEX IF NOT EXISTS idx_raffle_locks_expires_at ON raffle_locks (expires_at)",
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"error":     err.Error(),
				"statement": stmt,
			})
			return err
		}
	}

	return nil
}
