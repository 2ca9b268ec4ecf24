package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSalesReturnRepository implements SalesReturnRepository using GORM
type GormSalesReturnRepository struct {
	db *gorm.DB
}

// NewGormSalesReturnRepository creates a new GormSalesReturnRepository
func NewGormSalesReturnRepository(db *gorm.DB) *GormSalesReturnRepository {
	return &GormSalesReturnRepository{db: db}
}

// FindByID finds a sales return with its items
func (r *GormSalesReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.SalesReturn, error) {
	var ret billing.SalesReturn
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&ret, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// FindAll finds sales returns matching the filter along with the total count
func (r *GormSalesReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.SalesReturn, int64, error) {
	query := r.db.WithContext(ctx).Model(&billing.SalesReturn{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var returns []billing.SalesReturn
	if err := applyFilter(query, filter, "date").
		Preload("Items").
		Find(&returns).Error; err != nil {
		return nil, 0, err
	}
	return returns, total, nil
}

// Create persists a sales return with its items
func (r *GormSalesReturnRepository) Create(ctx context.Context, ret *billing.SalesReturn) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

var _ billing.SalesReturnRepository = (*GormSalesReturnRepository)(nil)
