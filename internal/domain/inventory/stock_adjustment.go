package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/shared"
)

// AdjustmentType says which direction a manual stock adjustment moves
type AdjustmentType string

const (
	AdjustmentTypeAdd    AdjustmentType = "ADD"
	AdjustmentTypeRemove AdjustmentType = "REMOVE"
)

// IsValid returns true if the adjustment type is known
func (t AdjustmentType) IsValid() bool {
	return t == AdjustmentTypeAdd || t == AdjustmentTypeRemove
}

// StockAdjustment is an audit record for a manual stock correction. The
// actual stock movement is the signed delta applied by the stock adjustment
// engine in the same transaction.
type StockAdjustment struct {
	shared.BaseEntity
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type      AdjustmentType `gorm:"type:varchar(10);not null"`
	Qty       int            `gorm:"not null"`
	Reason    string         `gorm:"type:text"`
	Date      time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockAdjustment) TableName() string {
	return "stock_adjustments"
}

// NewStockAdjustment creates a manual adjustment record
func NewStockAdjustment(productID uuid.UUID, adjType AdjustmentType, qty int, reason string) (*StockAdjustment, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product is required for a stock adjustment")
	}
	if !adjType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Adjustment type must be ADD or REMOVE")
	}
	if qty <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Adjustment quantity must be positive")
	}

	return &StockAdjustment{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Type:       adjType,
		Qty:        qty,
		Reason:     reason,
		Date:       time.Now(),
	}, nil
}

// StockDelta returns the signed quantity this adjustment applies to stock
func (a *StockAdjustment) StockDelta() int {
	if a.Type == AdjustmentTypeRemove {
		return -a.Qty
	}
	return a.Qty
}
