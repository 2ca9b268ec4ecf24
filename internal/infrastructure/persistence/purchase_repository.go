package persistence

import (
	"context"

	"github.com/sparepos/backend/internal/domain/inventory"
	"github.com/sparepos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPurchaseRepository implements PurchaseRepository using GORM
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindAll finds purchases matching the filter along with the total count
func (r *GormPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Purchase, int64, error) {
	query := r.db.WithContext(ctx).Model(&inventory.Purchase{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var purchases []inventory.Purchase
	if err := applyFilter(query, filter, "date").
		Preload("Items").
		Find(&purchases).Error; err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

// Create persists a purchase with its items
func (r *GormPurchaseRepository) Create(ctx context.Context, purchase *inventory.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

var _ inventory.PurchaseRepository = (*GormPurchaseRepository)(nil)

// GormStockAdjustmentRepository implements StockAdjustmentRepository using GORM
type GormStockAdjustmentRepository struct {
	db *gorm.DB
}

// NewGormStockAdjustmentRepository creates a new GormStockAdjustmentRepository
func NewGormStockAdjustmentRepository(db *gorm.DB) *GormStockAdjustmentRepository {
	return &GormStockAdjustmentRepository{db: db}
}

// FindAll finds adjustments matching the filter along with the total count
func (r *GormStockAdjustmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockAdjustment, int64, error) {
	query := r.db.WithContext(ctx).Model(&inventory.StockAdjustment{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var adjustments []inventory.StockAdjustment
	if err := applyFilter(query, filter, "date").Find(&adjustments).Error; err != nil {
		return nil, 0, err
	}
	return adjustments, total, nil
}

// Create persists a stock adjustment record
func (r *GormStockAdjustmentRepository) Create(ctx context.Context, adjustment *inventory.StockAdjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}

var _ inventory.StockAdjustmentRepository = (*GormStockAdjustmentRepository)(nil)
