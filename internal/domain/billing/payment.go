package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// Payment records money received from a customer. Recording one always
// decrements the customer's balance by the amount; overpayment is allowed and
// leaves the customer with an advance (negative balance).
type Payment struct {
	shared.BaseEntity
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Mode       PaymentMode     `gorm:"type:varchar(10);not null"`
	Notes      string          `gorm:"type:text"`
	Date       time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a payment-in record
func NewPayment(customerID uuid.UUID, amount decimal.Decimal, mode PaymentMode, notes string) (*Payment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer is required for a payment")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}
	if !mode.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid payment mode")
	}

	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Amount:     amount,
		Mode:       mode,
		Notes:      notes,
		Date:       time.Now(),
	}, nil
}

// PaymentOut records money paid to a supplier. Suppliers carry no running
// ledger, so this is a plain record with no balance side effect.
type PaymentOut struct {
	shared.BaseEntity
	SupplierID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Mode       PaymentMode     `gorm:"type:varchar(10);not null"`
	Notes      string          `gorm:"type:text"`
	Date       time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (PaymentOut) TableName() string {
	return "payments_out"
}

// NewPaymentOut creates a payment-out record
func NewPaymentOut(supplierID uuid.UUID, amount decimal.Decimal, mode PaymentMode, notes string, date time.Time) (*PaymentOut, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier is required for a payment out")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Payment amount must be positive")
	}
	if !mode.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Invalid payment mode")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &PaymentOut{
		BaseEntity: shared.NewBaseEntity(),
		SupplierID: supplierID,
		Amount:     amount,
		Mode:       mode,
		Notes:      notes,
		Date:       date,
	}, nil
}
