package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// Purchase records supplier-sourced stock coming in. Each line increments the
// product's stock and overwrites its purchase price with the latest cost.
type Purchase struct {
	shared.BaseEntity
	SupplierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Items       []PurchaseItem  `gorm:"foreignKey:PurchaseID"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseItem is a received line on a purchase.
type PurchaseItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Qty        int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// PurchaseItemInput is a received line as supplied by the caller.
type PurchaseItemInput struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
}

// NewPurchase assembles a purchase and computes its total.
func NewPurchase(supplierID uuid.UUID, items []PurchaseItemInput, date time.Time) (*Purchase, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier is required for a purchase")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase must contain at least one item")
	}
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &Purchase{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: supplierID,
		Date:       date,
	}

	total := decimal.Zero
	for _, in := range items {
		if in.Qty <= 0 {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase quantity must be positive")
		}
		if in.Price.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase price cannot be negative")
		}
		amount := in.Price.Mul(decimal.NewFromInt(int64(in.Qty)))
		purchase.Items = append(purchase.Items, PurchaseItem{
			PurchaseID: purchase.ID,
			ProductID:  in.ProductID,
			Qty:        in.Qty,
			Price:      in.Price,
			Amount:     amount,
		})
		total = total.Add(amount)
	}

	purchase.TotalAmount = total

	return purchase, nil
}
