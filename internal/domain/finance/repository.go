package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/shared"
)

// ExpenseRepository defines the persistence contract for expenses.
type ExpenseRepository interface {
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, int64, error)
	Create(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]string, error)
}
