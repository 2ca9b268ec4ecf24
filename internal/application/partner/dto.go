package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/partner"
)

// CreateCustomerRequest carries a new customer record.
type CreateCustomerRequest struct {
	Name    string
	Mobile  string
	Address string
	GST     string
}

// UpdateCustomerRequest carries editable customer fields. Balance, when set,
// is an absolute manual override of the running ledger value.
type UpdateCustomerRequest struct {
	Name    string
	Mobile  string
	Address string
	GST     string
	Balance *decimal.Decimal
}

// CreateSupplierRequest carries a new supplier record.
type CreateSupplierRequest struct {
	Name    string
	Mobile  string
	Address string
	GST     string
}

// UpdateSupplierRequest carries editable supplier fields.
type UpdateSupplierRequest struct {
	Name    string
	Mobile  string
	Address string
	GST     string
}

// CustomerResponse is the application-level view of a customer.
type CustomerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Mobile    string          `json:"mobile"`
	Address   string          `json:"address,omitempty"`
	GST       string          `json:"gst,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SupplierResponse is the application-level view of a supplier.
type SupplierResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile,omitempty"`
	Address   string    `json:"address,omitempty"`
	GST       string    `json:"gst,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to its response form
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Mobile:    c.Mobile,
		Address:   c.Address,
		GST:       c.GST,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// ToSupplierResponse converts a domain supplier to its response form
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Mobile:    s.Mobile,
		Address:   s.Address,
		GST:       s.GST,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSupplierResponses converts a slice of domain suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
