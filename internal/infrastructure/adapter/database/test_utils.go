package database

import (
	"testing"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/time"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestDB is an in-memory SQLite database with the production schema applied
type TestDB struct {
	DB           *gorm.DB
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDB opens a private in-memory database and runs every migration.
// The pool is pinned to a single connection so the in-memory schema is shared by all queries;
// concurrent transactions queue behind each other.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Discard,
		NowFunc: tp.Now,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migration.NewMigrationManagerWithTimeProvider(db, log, tp).MigrateAll(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return &TestDB{DB: db, Logger: log, TimeProvider: tp}
}

// UnitOfWork returns a unit of work over the test database
func (d *TestDB) UnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(d.DB, d.Logger, d.TimeProvider)
}

// Truncate deletes every row from the given tables
func (d *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	for _, table := range tables {
		if err := d.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
