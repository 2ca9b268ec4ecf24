package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// ProductRepository defines the persistence contract for products.
//
// AdjustStock is the stock adjustment engine's single primitive: it applies a
// signed delta relative to the current stored value using the storage
// engine's atomic increment, never read-modify-write, so concurrent
// adjustments compose additively.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, int64, error)
	FindLowStock(ctx context.Context, threshold int) ([]Product, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// AdjustStock increments the product's stock by delta (negative to
	// decrement). Returns ErrNotFound if the product does not exist.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error

	// SetPurchasePrice overwrites the stored cost with the latest purchase
	// price.
	SetPurchasePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error
}
