package persistence

import (
	"context"

	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindAll finds payments matching the filter along with the total count
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Payment, int64, error) {
	query := r.db.WithContext(ctx).Model(&billing.Payment{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []billing.Payment
	if err := applyFilter(query, filter, "date").Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// Create persists a payment
func (r *GormPaymentRepository) Create(ctx context.Context, payment *billing.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

var _ billing.PaymentRepository = (*GormPaymentRepository)(nil)

// GormPaymentOutRepository implements PaymentOutRepository using GORM
type GormPaymentOutRepository struct {
	db *gorm.DB
}

// NewGormPaymentOutRepository creates a new GormPaymentOutRepository
func NewGormPaymentOutRepository(db *gorm.DB) *GormPaymentOutRepository {
	return &GormPaymentOutRepository{db: db}
}

// FindAll finds supplier payments matching the filter along with the total count
func (r *GormPaymentOutRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.PaymentOut, int64, error) {
	query := r.db.WithContext(ctx).Model(&billing.PaymentOut{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []billing.PaymentOut
	if err := applyFilter(query, filter, "date").Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// Create persists a supplier payment
func (r *GormPaymentOutRepository) Create(ctx context.Context, payment *billing.PaymentOut) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

var _ billing.PaymentOutRepository = (*GormPaymentOutRepository)(nil)
