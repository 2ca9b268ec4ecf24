// Package persistence implements the domain repositories with GORM on
// PostgreSQL. Stock and balance mutations go through relative-delta updates
// so concurrent ledger transactions compose without read-modify-write races.
package persistence

import (
	"fmt"
	"time"

	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/finance"
	"github.com/sparepos/backend/internal/domain/identity"
	"github.com/sparepos/backend/internal/domain/inventory"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Database holds the database connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection with the given configuration
func NewDatabase(cfg *config.DatabaseConfig, logger gormlogger.Interface) (*Database, error) {
	if logger == nil {
		logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 logger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// AutoMigrate creates or updates the schema for every persisted entity. The
// migrations/ directory is the canonical schema; this exists for tests and
// quick local setups.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Product{},
		&partner.Customer{},
		&partner.Supplier{},
		&billing.Bill{},
		&billing.BillItem{},
		&billing.SalesReturn{},
		&billing.ReturnItem{},
		&billing.Payment{},
		&billing.PaymentOut{},
		&inventory.Purchase{},
		&inventory.PurchaseItem{},
		&inventory.StockAdjustment{},
		&finance.Expense{},
		&identity.User{},
	)
}
