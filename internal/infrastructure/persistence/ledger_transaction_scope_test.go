package persistence

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupLedgerDB opens an in-memory SQLite database with the ledger tables
// migrated, so scope tests run against a real transaction implementation.
func setupLedgerDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Product{}, &partner.Customer{})
	require.NoError(t, err)

	return db
}

func seedLedgerProduct(t *testing.T, db *gorm.DB, stock int) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct("BRK-01", "Brake Pad", "Brakes", "pcs",
		decimal.NewFromInt(100), decimal.NewFromInt(150))
	require.NoError(t, err)
	product.Stock = stock
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedLedgerCustomer(t *testing.T, db *gorm.DB) *partner.Customer {
	t.Helper()

	customer, err := partner.NewCustomer("Ravi Traders", "9876543210", "", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupLedgerDB(t)
	product := seedLedgerProduct(t, db, 10)
	customer := seedLedgerCustomer(t, db)

	scope := NewGormTransactionScope(db)
	err := scope.Execute(context.Background(), func(repos ledger.TransactionalRepositories) error {
		if err := repos.Products().AdjustStock(context.Background(), product.ID, -3); err != nil {
			return err
		}
		return repos.Customers().AdjustBalance(context.Background(), customer.ID, decimal.NewFromInt(450))
	})
	require.NoError(t, err)

	var reloaded catalog.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	require.Equal(t, 7, reloaded.Stock)

	var reloadedCustomer partner.Customer
	require.NoError(t, db.First(&reloadedCustomer, "id = ?", customer.ID).Error)
	require.True(t, reloadedCustomer.Balance.Equal(decimal.NewFromInt(450)),
		"balance = %s", reloadedCustomer.Balance)
}

func TestGormTransactionScope_RollsBackOnError(t *testing.T) {
	db := setupLedgerDB(t)
	product := seedLedgerProduct(t, db, 10)

	boom := errors.New("downstream failure")
	scope := NewGormTransactionScope(db)
	err := scope.Execute(context.Background(), func(repos ledger.TransactionalRepositories) error {
		if err := repos.Products().AdjustStock(context.Background(), product.ID, -3); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var reloaded catalog.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	require.Equal(t, 10, reloaded.Stock, "rolled back delta must not be visible")
}

func TestGormTransactionScope_SharesOneTransaction(t *testing.T) {
	db := setupLedgerDB(t)
	product := seedLedgerProduct(t, db, 5)
	customer := seedLedgerCustomer(t, db)

	boom := errors.New("late failure")
	scope := NewGormTransactionScope(db)
	err := scope.Execute(context.Background(), func(repos ledger.TransactionalRepositories) error {
		if err := repos.Products().AdjustStock(context.Background(), product.ID, -5); err != nil {
			return err
		}
		if err := repos.Customers().AdjustBalance(context.Background(), customer.ID, decimal.NewFromInt(100)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var reloaded catalog.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	require.Equal(t, 5, reloaded.Stock)

	var reloadedCustomer partner.Customer
	require.NoError(t, db.First(&reloadedCustomer, "id = ?", customer.ID).Error)
	require.True(t, reloadedCustomer.Balance.IsZero(),
		"balance = %s", reloadedCustomer.Balance)
}

func TestAdjustmentsComposeUnderConcurrency(t *testing.T) {
	// File-backed database so concurrent connections see one store; the busy
	// timeout makes writers wait for the lock instead of failing.
	dsn := "file:" + filepath.Join(t.TempDir(), "ledger.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Product{}, &partner.Customer{}))

	product := seedLedgerProduct(t, db, 100)
	customer := seedLedgerCustomer(t, db)

	products := NewGormProductRepository(db)
	customers := NewGormCustomerRepository(db)

	const workers = 8
	errs := make(chan error, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- products.AdjustStock(context.Background(), product.ID, -3)
			errs <- customers.AdjustBalance(context.Background(), customer.ID, decimal.NewFromInt(50))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var reloaded catalog.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	require.Equal(t, 100-3*workers, reloaded.Stock, "every stock delta must apply")

	var reloadedCustomer partner.Customer
	require.NoError(t, db.First(&reloadedCustomer, "id = ?", customer.ID).Error)
	require.True(t, reloadedCustomer.Balance.Equal(decimal.NewFromInt(50*workers)),
		"balance = %s", reloadedCustomer.Balance)
}
