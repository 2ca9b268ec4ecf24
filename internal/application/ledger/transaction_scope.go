// Package ledger defines the transactional boundary shared by every
// multi-step ledger mutation. Bill creation, edits, deletes, purchases,
// returns, payments and manual adjustments all span the bill/return/payment
// records, product stock and customer balances; the scope guarantees those
// writes commit or roll back as one unit.
package ledger

import (
	"context"

	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/inventory"
	"github.com/sparepos/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the ledger repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories within
// a transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	Bills() billing.BillRepository
	Returns() billing.SalesReturnRepository
	Payments() billing.PaymentRepository
	Products() catalog.ProductRepository
	Customers() partner.CustomerRepository
	Purchases() inventory.PurchaseRepository
	Adjustments() inventory.StockAdjustmentRepository
}

// NoOpTransactionScope runs functions without a real transaction. It exists
// for tests that assert coordinator sequencing against mock repositories.
type NoOpTransactionScope struct {
	BillRepo       billing.BillRepository
	ReturnRepo     billing.SalesReturnRepository
	PaymentRepo    billing.PaymentRepository
	ProductRepo    catalog.ProductRepository
	CustomerRepo   partner.CustomerRepository
	PurchaseRepo   inventory.PurchaseRepository
	AdjustmentRepo inventory.StockAdjustmentRepository
}

// Execute runs the function directly against the configured repositories.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Bills returns the bill repository.
func (s *NoOpTransactionScope) Bills() billing.BillRepository { return s.BillRepo }

// Returns returns the sales return repository.
func (s *NoOpTransactionScope) Returns() billing.SalesReturnRepository { return s.ReturnRepo }

// Payments returns the payment repository.
func (s *NoOpTransactionScope) Payments() billing.PaymentRepository { return s.PaymentRepo }

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository { return s.ProductRepo }

// Customers returns the customer repository.
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository { return s.CustomerRepo }

// Purchases returns the purchase repository.
func (s *NoOpTransactionScope) Purchases() inventory.PurchaseRepository { return s.PurchaseRepo }

// Adjustments returns the stock adjustment repository.
func (s *NoOpTransactionScope) Adjustments() inventory.StockAdjustmentRepository {
	return s.AdjustmentRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
