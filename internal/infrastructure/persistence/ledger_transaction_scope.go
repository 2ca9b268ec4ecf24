package persistence

import (
	"context"

	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/inventory"
	"github.com/sparepos/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormTransactionScope implements the ledger transaction scope using GORM
// transactions. Every repository handed to the callback shares one database
// transaction, so ledger side effects commit or roll back as a unit.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. If the
// function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos ledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// Bills returns the bill repository scoped to the current transaction
func (r *gormTransactionalRepositories) Bills() billing.BillRepository {
	return NewGormBillRepository(r.tx)
}

// Returns returns the sales return repository scoped to the current transaction
func (r *gormTransactionalRepositories) Returns() billing.SalesReturnRepository {
	return NewGormSalesReturnRepository(r.tx)
}

// Payments returns the payment repository scoped to the current transaction
func (r *gormTransactionalRepositories) Payments() billing.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// Products returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Customers returns the customer repository scoped to the current transaction
func (r *gormTransactionalRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// Purchases returns the purchase repository scoped to the current transaction
func (r *gormTransactionalRepositories) Purchases() inventory.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

// Adjustments returns the stock adjustment repository scoped to the current transaction
func (r *gormTransactionalRepositories) Adjustments() inventory.StockAdjustmentRepository {
	return NewGormStockAdjustmentRepository(r.tx)
}

var _ ledger.TransactionScope = (*GormTransactionScope)(nil)
var _ ledger.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
