package partner

import (
	"time"

	"github.com/sparepos/backend/internal/domain/shared"
)

// Supplier represents a parts supplier. Suppliers carry no running ledger;
// purchases and payments out reference them by ID only.
type Supplier struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Mobile  string `gorm:"type:varchar(20);index"`
	Address string `gorm:"type:text"`
	GST     string `gorm:"type:varchar(30);column:gst"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, mobile, address, gst string) (*Supplier, error) {
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot be empty")
	}

	return &Supplier{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Mobile:     mobile,
		Address:    address,
		GST:        gst,
	}, nil
}

// Update updates supplier contact details
func (s *Supplier) Update(name, mobile, address, gst string) error {
	if name == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Supplier name cannot be empty")
	}

	s.Name = name
	s.Mobile = mobile
	s.Address = address
	s.GST = gst
	s.UpdatedAt = time.Now()

	return nil
}
