// Package catalog hosts the product catalog CRUD service. Stock is read-only
// here; every stock mutation flows through the inventory or billing
// coordinators.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create adds a product to the catalog. The code must be unique; initial
// stock arrives via purchases or manual adjustments, not here.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Code, req.Name, req.Category, req.Unit, req.PurchasePrice, req.SellingPrice)
	if err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsByCode(ctx, product.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this code already exists")
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("product creation failed", zap.String("code", product.Code), zap.Error(err))
		return nil, err
	}

	s.logger.Info("product created", zap.String("product_id", product.ID.String()), zap.String("code", product.Code))

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update edits a product's catalog fields. Stock and code are immutable here.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Category, req.Unit, req.PurchasePrice, req.SellingPrice); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("product update failed", zap.String("product_id", id.String()), zap.Error(err))
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error("product deletion failed", zap.String("product_id", id.String()), zap.Error(err))
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

// GetByID retrieves a product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByCode retrieves a product by its catalog code
func (s *ProductService) GetByCode(ctx context.Context, code string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, total, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// ListLowStock retrieves products below the low-stock threshold
func (s *ProductService) ListLowStock(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindLowStock(ctx, catalog.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}
