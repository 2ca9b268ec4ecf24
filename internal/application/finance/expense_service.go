// Package finance hosts expense tracking and supplier payments. Neither
// touches stock or customer ledgers; both exist for record keeping and
// reporting.
package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/finance"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ExpenseService handles expense records
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	logger      *zap.Logger
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}
	expense, err := finance.NewExpense(req.Title, req.Category, req.Amount, req.Notes, date)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		s.logger.Error("expense creation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("expense recorded",
		zap.String("expense_id", expense.ID.String()),
		zap.String("category", expense.Category),
		zap.String("amount", expense.Amount.String()))

	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		s.logger.Error("expense deletion failed", zap.String("expense_id", id.String()), zap.Error(err))
		return err
	}
	return nil
}

// List retrieves expenses matching the filter
func (s *ExpenseService) List(ctx context.Context, filter shared.Filter) ([]ExpenseResponse, int64, error) {
	expenses, total, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToExpenseResponses(expenses), total, nil
}

// ListCategories returns the distinct expense categories in use
func (s *ExpenseService) ListCategories(ctx context.Context) ([]string, error) {
	return s.expenseRepo.ListCategories(ctx)
}
