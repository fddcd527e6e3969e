package migration

import (
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates partial and BRIN indexes. Other dialects are skipped.
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	if !m.isPostgres() {
		m.logger.Debug("Skipping advanced indexes for non-postgres dialect", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// Draw pool lookup
			name: "idx_tickets_eligible",
			sql: `CREATE INDEX IF NOT EXISTS idx_tickets_eligible
				ON tickets (raffle_id, id)
				WHERE state = 'sold' AND verified = true`,
		},
		{
			name: "idx_tickets_unverified",
			sql: `CREATE INDEX IF NOT EXISTS idx_tickets_unverified
				ON tickets (raffle_id, purchased_at)
				WHERE state = 'sold' AND verified = false`,
		},
		{
			name: "idx_tickets_cancelled",
			sql: `CREATE INDEX IF NOT EXISTS idx_tickets_cancelled
				ON tickets (raffle_id)
				WHERE cancellation IS NOT NULL`,
		},
		{
			name: "idx_tickets_buyer_city_lower",
			sql: `CREATE INDEX IF NOT EXISTS idx_tickets_buyer_city_lower
				ON tickets (raffle_id, lower(buyer_city))`,
		},
		{
			name: "idx_tickets_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_tickets_created_at_brin
				ON tickets USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	if !m.isPostgres() {
		return nil
	}

	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// raffles and tickets are updated in place on every sale
	tweaks := []string{
		`ALTER TABLE raffles SET (fillfactor = 80)`,
		`ALTER TABLE tickets SET (fillfactor = 85)`,
		`ALTER TABLE tickets ALTER COLUMN transaction_id SET STATISTICS 1000`,
	}

	for _, stmt := range tweaks {
		if err := m.db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
	return nil
}
