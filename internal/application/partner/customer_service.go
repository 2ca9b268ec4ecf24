// Package partner hosts customer and supplier CRUD services. Customer
// balances normally move only through the ledger coordinators; the one
// exception is the manual override on the edit form, handled here.
package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService handles customer operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create adds a customer with a zero opening balance. Mobile numbers are
// unique across customers.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Mobile, req.Address, req.GST)
	if err != nil {
		return nil, err
	}

	exists, err := s.customerRepo.ExistsByMobile(ctx, customer.Mobile)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A customer with this mobile already exists")
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("customer creation failed", zap.String("mobile", customer.Mobile), zap.Error(err))
		return nil, err
	}

	s.logger.Info("customer created", zap.String("customer_id", customer.ID.String()))

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update edits contact details and, when Balance is supplied, overwrites the
// running balance absolutely. The override is the opening-balance correction
// path; it deliberately bypasses delta semantics.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.Mobile, req.Address, req.GST); err != nil {
		return nil, err
	}
	if req.Balance != nil {
		customer.SetBalance(*req.Balance)
		s.logger.Info("customer balance overridden",
			zap.String("customer_id", id.String()),
			zap.String("balance", req.Balance.String()))
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("customer update failed", zap.String("customer_id", id.String()), zap.Error(err))
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Delete removes a customer. Historical bills keep their denormalized name
// and mobile snapshots.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		s.logger.Error("customer deletion failed", zap.String("customer_id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("customer deleted", zap.String("customer_id", id.String()))
	return nil
}

// GetByID retrieves a customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// List retrieves customers matching the filter
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) ([]CustomerResponse, int64, error) {
	customers, total, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToCustomerResponses(customers), total, nil
}
