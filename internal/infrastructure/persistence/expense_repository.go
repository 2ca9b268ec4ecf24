package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/finance"
	"github.com/sparepos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindAll finds expenses matching the filter along with the total count
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&finance.Expense{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR category LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []finance.Expense
	if err := applyFilter(query, filter, "date").Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// Create persists an expense record
func (r *GormExpenseRepository) Create(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// Delete removes an expense record
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ListCategories returns the distinct categories in use
func (r *GormExpenseRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&finance.Expense{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
