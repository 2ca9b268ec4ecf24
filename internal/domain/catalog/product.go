package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// LowStockThreshold is the stock level below which a product is reported as
// low stock. Stock itself is never floored at this value; billing may drive
// it negative and reporting is the control mechanism.
const LowStockThreshold = 5

// Product represents a catalog item (spare part / SKU).
// Stock is an integer quantity mutated only through relative deltas applied
// by the persistence layer; it may go negative.
type Product struct {
	shared.BaseEntity
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Category      string          `gorm:"type:varchar(100);index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Stock         int             `gorm:"not null;default:0"`
	Unit          string          `gorm:"type:varchar(20);not null;default:'pcs'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(code, name, category, unit string, purchasePrice, sellingPrice decimal.Decimal) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if purchasePrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Purchase price cannot be negative")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Selling price cannot be negative")
	}
	if unit == "" {
		unit = "pcs"
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Code:          strings.ToUpper(code),
		Name:          name,
		Category:      category,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
		Unit:          unit,
	}, nil
}

// Update updates the product's editable fields. Stock is excluded on purpose:
// it only moves through the stock adjustment path.
func (p *Product) Update(name, category, unit string, purchasePrice, sellingPrice decimal.Decimal) error {
	if err := validateName(name); err != nil {
		return err
	}
	if purchasePrice.IsNegative() || sellingPrice.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Prices cannot be negative")
	}

	p.Name = name
	p.Category = category
	if unit != "" {
		p.Unit = unit
	}
	p.PurchasePrice = purchasePrice
	p.SellingPrice = sellingPrice
	p.UpdatedAt = time.Now()

	return nil
}

// IsLowStock reports whether stock has fallen below the low-stock threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("VALIDATION_ERROR", "Product code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("VALIDATION_ERROR", "Product name cannot exceed 200 characters")
	}
	return nil
}
