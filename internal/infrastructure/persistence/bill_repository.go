package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBillRepository implements BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID finds a bill with its items
func (r *GormBillRepository) FindByID(ctx context.Context, id int64) (*billing.Bill, error) {
	var bill billing.Bill
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bill, nil
}

// FindAll finds bills matching the filter along with the total count
func (r *GormBillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Bill, int64, error) {
	query := r.db.WithContext(ctx).Model(&billing.Bill{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(customer_name) LIKE ? OR customer_mobile LIKE ?", pattern, "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bills []billing.Bill
	if err := applyFilter(query, filter, "date").
		Preload("Items").
		Find(&bills).Error; err != nil {
		return nil, 0, err
	}
	return bills, total, nil
}

// Create persists a bill header together with its items
func (r *GormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

// UpdateHeader persists header fields only; items are immutable after
// creation and never touched here.
func (r *GormBillRepository) UpdateHeader(ctx context.Context, bill *billing.Bill) error {
	return r.db.WithContext(ctx).
		Model(&billing.Bill{}).
		Where("id = ?", bill.ID).
		Select("customer_id", "customer_name", "customer_mobile", "payment_mode", "date", "updated_at").
		Updates(map[string]interface{}{
			"customer_id":     bill.CustomerID,
			"customer_name":   bill.CustomerName,
			"customer_mobile": bill.CustomerMobile,
			"payment_mode":    bill.PaymentMode,
			"date":            bill.Date,
			"updated_at":      bill.UpdatedAt,
		}).Error
}

// DeleteWithItems removes the bill's items, then the header
func (r *GormBillRepository) DeleteWithItems(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&billing.BillItem{}, "bill_id = ?", id).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&billing.Bill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumTotalsBetween returns the billed total and bill count in [from, to)
func (r *GormBillRepository) SumTotalsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.NullDecimal
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&billing.Bill{}).
		Where("date >= ? AND date < ?", from, to).
		Select("SUM(total_amount) AS total, COUNT(*) AS count").
		Scan(&row).Error; err != nil {
		return decimal.Zero, 0, err
	}
	if !row.Total.Valid {
		return decimal.Zero, row.Count, nil
	}
	return row.Total.Decimal, row.Count, nil
}

var _ billing.BillRepository = (*GormBillRepository)(nil)
