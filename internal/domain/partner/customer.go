package partner

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
)

// Customer represents a buyer with a running credit ledger.
//
// Balance is signed: positive means the customer owes the business, negative
// means the customer holds an advance. It moves only through the balance
// adjustment engine (relative deltas applied by the persistence layer), with
// one documented exception: SetBalance, the manual override used by the
// customer edit form to correct opening balances.
type Customer struct {
	shared.BaseEntity
	Name    string          `gorm:"type:varchar(200);not null"`
	Mobile  string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Address string          `gorm:"type:text"`
	GST     string          `gorm:"type:varchar(30);column:gst"`
	Balance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with a zero opening balance
func NewCustomer(name, mobile, address, gst string) (*Customer, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer name cannot be empty")
	}
	if mobile == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Customer mobile cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Mobile:     mobile,
		Address:    address,
		GST:        gst,
		Balance:    decimal.Zero,
	}, nil
}

// Update updates contact details without touching the balance
func (c *Customer) Update(name, mobile, address, gst string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer name cannot be empty")
	}
	if mobile == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Customer mobile cannot be empty")
	}

	c.Name = name
	c.Mobile = mobile
	c.Address = address
	c.GST = gst
	c.UpdatedAt = time.Now()

	return nil
}

// SetBalance overwrites the running balance absolutely, bypassing delta
// semantics. Only the customer edit form calls this.
func (c *Customer) SetBalance(balance decimal.Decimal) {
	c.Balance = balance
	c.UpdatedAt = time.Now()
}

// OwesMoney reports whether the customer has outstanding credit
func (c *Customer) OwesMoney() bool {
	return c.Balance.IsPositive()
}

// HasAdvance reports whether the customer holds an advance/credit
func (c *Customer) HasAdvance() bool {
	return c.Balance.IsNegative()
}
