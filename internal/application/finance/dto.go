package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/finance"
)

// CreateExpenseRequest carries a new expense record.
type CreateExpenseRequest struct {
	Title    string
	Category string
	Amount   decimal.Decimal
	Notes    string
	Date     *time.Time
}

// RecordPaymentOutRequest carries a supplier payment.
type RecordPaymentOutRequest struct {
	SupplierID uuid.UUID
	Amount     decimal.Decimal
	Mode       string
	Notes      string
	Date       *time.Time
}

// ExpenseResponse is the application-level view of an expense.
type ExpenseResponse struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes,omitempty"`
	Date     time.Time       `json:"date"`
}

// PaymentOutResponse is the application-level view of a supplier payment.
type PaymentOutResponse struct {
	ID         uuid.UUID       `json:"id"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	Amount     decimal.Decimal `json:"amount"`
	Mode       string          `json:"mode"`
	Notes      string          `json:"notes,omitempty"`
	Date       time.Time       `json:"date"`
}

// ToExpenseResponse converts a domain expense to its response form
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:       e.ID,
		Title:    e.Title,
		Category: e.Category,
		Amount:   e.Amount,
		Notes:    e.Notes,
		Date:     e.Date,
	}
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}

// ToPaymentOutResponse converts a domain supplier payment to its response form
func ToPaymentOutResponse(p *billing.PaymentOut) PaymentOutResponse {
	return PaymentOutResponse{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Amount:     p.Amount,
		Mode:       p.Mode.String(),
		Notes:      p.Notes,
		Date:       p.Date,
	}
}

// ToPaymentOutResponses converts a slice of domain supplier payments
func ToPaymentOutResponses(payments []billing.PaymentOut) []PaymentOutResponse {
	responses := make([]PaymentOutResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentOutResponse(&payments[i])
	}
	return responses
}
