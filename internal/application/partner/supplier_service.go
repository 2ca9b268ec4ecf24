package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SupplierService handles supplier operations
type SupplierService struct {
	supplierRepo partner.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create adds a supplier
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := partner.NewSupplier(req.Name, req.Mobile, req.Address, req.GST)
	if err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		s.logger.Error("supplier creation failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("supplier created", zap.String("supplier_id", supplier.ID.String()))

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Update edits supplier contact details
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.Mobile, req.Address, req.GST); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		s.logger.Error("supplier update failed", zap.String("supplier_id", id.String()), zap.Error(err))
		return nil, err
	}

	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.supplierRepo.Delete(ctx, id); err != nil {
		s.logger.Error("supplier deletion failed", zap.String("supplier_id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("supplier deleted", zap.String("supplier_id", id.String()))
	return nil
}

// GetByID retrieves a supplier
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSupplierResponse(supplier)
	return &resp, nil
}

// List retrieves suppliers matching the filter
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) ([]SupplierResponse, int64, error) {
	suppliers, total, err := s.supplierRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToSupplierResponses(suppliers), total, nil
}
