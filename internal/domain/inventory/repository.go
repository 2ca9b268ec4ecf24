package inventory

import (
	"context"

	"github.com/sparepos/backend/internal/domain/shared"
)

// PurchaseRepository defines the persistence contract for purchases.
type PurchaseRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, int64, error)
	Create(ctx context.Context, purchase *Purchase) error
}

// StockAdjustmentRepository defines the persistence contract for manual
// stock adjustment records.
type StockAdjustmentRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]StockAdjustment, int64, error)
	Create(ctx context.Context, adjustment *StockAdjustment) error
}
