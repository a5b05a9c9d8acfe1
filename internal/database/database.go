// Package database opens the journal store and migrates its tables.
//
// Postgres is the exact-decimal store: decimal(20,8) columns map to NUMERIC
// and keep every digit. SQLite gives those columns NUMERIC affinity, so
// values are held as REAL and lose precision beyond about 15 significant
// digits. Use SQLite for single-user journals and tests.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/juninatt/trader-journal/internal/logger"
	"github.com/juninatt/trader-journal/internal/models"
)

// Models lists every table of the journal, parents before children.
var Models = []any{
	&models.Asset{},
	&models.Trade{},
	&models.JournalEntry{},
	&models.TradeSnapshot{},
	&models.ExecutedSale{},
	&models.AuditLog{},
}

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	driver string
}

// NewManager opens a connection for the configured driver.
func NewManager(config *Config) (*Manager, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	case DriverSQLite, "":
		dialector = sqlite.Open(config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, driver: config.Driver}, nil
}

// Migrate creates or updates the tables from the model definitions.
func (m *Manager) Migrate() error {
	logger.Get().Infow("Creating database tables", "driver", m.driver)

	if err := m.db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	logger.Get().Info("Database tables are up to date")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
