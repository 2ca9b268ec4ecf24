package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// SalesReturn records goods coming back from a customer. Return items are
// re-priced independently of the originating bill, which allows partial and
// discounted returns.
//
// A return always restores stock. When a customer is attached, it always
// credits that customer's ledger (balance decrement) regardless of how the
// original bill was paid; see the design notes for the open question on this.
type SalesReturn struct {
	shared.BaseEntity
	BillID      *int64          `gorm:"index"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index"`
	Items       []ReturnItem    `gorm:"foreignKey:SalesReturnID"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SalesReturn) TableName() string {
	return "sales_returns"
}

// ReturnItem is a returned line, priced at return time.
type ReturnItem struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	SalesReturnID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Qty           int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (ReturnItem) TableName() string {
	return "return_items"
}

// ReturnItemInput is a returned line as supplied by the caller.
type ReturnItemInput struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
}

// NewSalesReturn assembles a return and computes its total from the return
// line items.
func NewSalesReturn(billID *int64, customerID *uuid.UUID, items []ReturnItemInput) (*SalesReturn, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Return must contain at least one item")
	}

	ret := &SalesReturn{
		BaseEntity: shared.NewBaseEntity(),
		BillID:     billID,
		CustomerID: customerID,
		Date:       time.Now(),
	}

	total := decimal.Zero
	for _, in := range items {
		if in.Qty <= 0 {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Return quantity must be positive")
		}
		if in.Price.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Return price cannot be negative")
		}
		amount := in.Price.Mul(decimal.NewFromInt(int64(in.Qty)))
		ret.Items = append(ret.Items, ReturnItem{
			SalesReturnID: ret.ID,
			ProductID:     in.ProductID,
			Qty:           in.Qty,
			Price:         in.Price,
			Amount:        amount,
		})
		total = total.Add(amount)
	}

	ret.TotalAmount = total

	return ret, nil
}

// RefundsCustomer reports whether the return credits a customer ledger
func (r *SalesReturn) RefundsCustomer() bool {
	return r.CustomerID != nil
}
