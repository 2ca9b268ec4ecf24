package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// BillRepository defines the persistence contract for bills and their items.
// Create persists the header together with its items; DeleteWithItems removes
// items before the header. Both are expected to run inside the coordinator's
// transaction scope.
type BillRepository interface {
	FindByID(ctx context.Context, id int64) (*Bill, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Bill, int64, error)
	Create(ctx context.Context, bill *Bill) error
	UpdateHeader(ctx context.Context, bill *Bill) error
	DeleteWithItems(ctx context.Context, id int64) error

	// SumTotalsBetween returns the total billed amount and bill count in
	// [from, to), feeding the dashboard projections.
	SumTotalsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error)
}

// SalesReturnRepository defines the persistence contract for sales returns.
type SalesReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesReturn, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesReturn, int64, error)
	Create(ctx context.Context, ret *SalesReturn) error
}

// PaymentRepository defines the persistence contract for customer payments.
type PaymentRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]Payment, int64, error)
	Create(ctx context.Context, payment *Payment) error
}

// PaymentOutRepository defines the persistence contract for supplier payments.
type PaymentOutRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentOut, int64, error)
	Create(ctx context.Context, payment *PaymentOut) error
}
