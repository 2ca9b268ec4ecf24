package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// PaymentMode represents how a bill or payment was settled
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeUPI    PaymentMode = "UPI"
	PaymentModeCredit PaymentMode = "CREDIT"
	PaymentModeBank   PaymentMode = "BANK"
)

// String returns the string representation of PaymentMode
func (m PaymentMode) String() string {
	return string(m)
}

// IsValid returns true if the payment mode is one of the known modes
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCredit, PaymentModeBank:
		return true
	}
	return false
}

// Bill is the invoice aggregate. Bills are numbered sequentially.
//
// Customer name and mobile are denormalized snapshots captured at creation
// time so historical invoices never change when the customer record is later
// edited. Line items are immutable after creation; editing quantities would
// require re-deriving stock deltas, so users delete and recreate instead.
//
// Invariant: TotalAmount == Σ(item.Qty · item.Price) − Discount + TransportCharge.
type Bill struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName    string          `gorm:"type:varchar(200)"`
	CustomerMobile  string          `gorm:"type:varchar(20)"`
	Items           []BillItem      `gorm:"foreignKey:BillID"`
	Discount        decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TransportCharge decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentMode     PaymentMode     `gorm:"type:varchar(10);not null"`
	Date            time.Time       `gorm:"not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Bill) TableName() string {
	return "bills"
}

// BillItem is a line on a bill. Price is a snapshot of the unit price at sale
// time, independent of later product price changes.
type BillItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	BillID    int64           `gorm:"not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Qty       int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (BillItem) TableName() string {
	return "bill_items"
}

// BillItemInput is a line item as supplied by the caller at creation time.
type BillItemInput struct {
	ProductID uuid.UUID
	Qty       int
	Price     decimal.Decimal
}

// NewBill assembles a bill from caller input, computing line amounts and the
// bill total. A bill with no items is rejected with EMPTY_ORDER. A CREDIT
// bill without a customer is permitted; it simply has no balance effect.
func NewBill(
	customerID *uuid.UUID,
	customerName, customerMobile string,
	items []BillItemInput,
	discount, transportCharge decimal.Decimal,
	paymentMode PaymentMode,
	date time.Time,
) (*Bill, error) {
	if len(items) == 0 {
		return nil, shared.ErrEmptyOrder
	}
	if !paymentMode.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid payment mode")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Discount cannot be negative")
	}
	if transportCharge.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Transport charge cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	now := time.Now()
	bill := &Bill{
		CustomerID:      customerID,
		CustomerName:    customerName,
		CustomerMobile:  customerMobile,
		Discount:        discount,
		TransportCharge: transportCharge,
		PaymentMode:     paymentMode,
		Date:            date,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	subtotal := decimal.Zero
	for _, in := range items {
		if in.Qty <= 0 {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Item quantity must be positive")
		}
		if in.Price.IsNegative() {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "Item price cannot be negative")
		}
		amount := in.Price.Mul(decimal.NewFromInt(int64(in.Qty)))
		bill.Items = append(bill.Items, BillItem{
			ProductID: in.ProductID,
			Qty:       in.Qty,
			Price:     in.Price,
			Amount:    amount,
		})
		subtotal = subtotal.Add(amount)
	}

	bill.TotalAmount = subtotal.Sub(discount).Add(transportCharge)

	return bill, nil
}

// Subtotal returns the sum of line amounts before discount and transport
func (b *Bill) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range b.Items {
		sum = sum.Add(item.Amount)
	}
	return sum
}

// AffectsCustomerBalance reports whether the bill moves a customer ledger:
// only CREDIT bills with an attached customer do.
func (b *Bill) AffectsCustomerBalance() bool {
	return b.PaymentMode == PaymentModeCredit && b.CustomerID != nil
}

// SetCustomer repoints the bill at a customer and refreshes the denormalized
// snapshot from the given record.
func (b *Bill) SetCustomer(customerID uuid.UUID, name, mobile string) {
	b.CustomerID = &customerID
	b.CustomerName = name
	b.CustomerMobile = mobile
	b.UpdatedAt = time.Now()
}

// SetPaymentMode changes the settlement mode
func (b *Bill) SetPaymentMode(mode PaymentMode) error {
	if !mode.IsValid() {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid payment mode")
	}
	b.PaymentMode = mode
	b.UpdatedAt = time.Now()
	return nil
}

// SetDate changes the bill date
func (b *Bill) SetDate(date time.Time) {
	b.Date = date
	b.UpdatedAt = time.Now()
}
