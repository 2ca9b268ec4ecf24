package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// Expense is a business outgoing unrelated to supplier purchases (rent,
// electricity, wages). Expenses do not touch any ledger; they only feed
// reporting.
type Expense struct {
	shared.BaseEntity
	Title    string          `gorm:"type:varchar(200);not null"`
	Category string          `gorm:"type:varchar(100);not null;index"`
	Amount   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Notes    string          `gorm:"type:text"`
	Date     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates an expense record
func NewExpense(title, category string, amount decimal.Decimal, notes string, date time.Time) (*Expense, error) {
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense title cannot be empty")
	}
	if category == "" {
		category = "General"
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Expense amount must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Expense{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Category:   category,
		Amount:     amount,
		Notes:      notes,
		Date:       date,
	}, nil
}
