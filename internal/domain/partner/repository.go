package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence contract for customers.
//
// AdjustBalance is the balance adjustment engine's single primitive: a signed
// monetary delta applied relative to the stored value with the storage
// engine's atomic increment. Save persists the whole record and is reserved
// for CRUD paths (including the manual balance override).
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByMobile(ctx context.Context, mobile string) (*Customer, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByMobile(ctx context.Context, mobile string) (bool, error)

	// AdjustBalance increments the customer's balance by amount (negative to
	// decrement). Returns ErrNotFound if the customer does not exist.
	AdjustBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// SumOutstanding returns the total of all positive balances.
	SumOutstanding(ctx context.Context) (decimal.Decimal, error)
}

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, int64, error)
	Save(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
