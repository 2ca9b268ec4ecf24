package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/inventory"
	"github.com/sparepos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock implementations

type mockPurchaseRepository struct {
	mock.Mock
}

func (m *mockPurchaseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Purchase, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.Purchase), args.Get(1).(int64), args.Error(2)
}

func (m *mockPurchaseRepository) Create(ctx context.Context, purchase *inventory.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

type mockAdjustmentRepository struct {
	mock.Mock
}

func (m *mockAdjustmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockAdjustment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.StockAdjustment), args.Get(1).(int64), args.Error(2)
}

func (m *mockAdjustmentRepository) Create(ctx context.Context, adjustment *inventory.StockAdjustment) error {
	args := m.Called(ctx, adjustment)
	return args.Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepository) FindLowStock(ctx context.Context, threshold int) ([]catalog.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *mockProductRepository) SetPurchasePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func newTestService() (*InventoryService, *mockPurchaseRepository, *mockAdjustmentRepository, *mockProductRepository) {
	purchaseRepo := new(mockPurchaseRepository)
	adjustmentRepo := new(mockAdjustmentRepository)
	productRepo := new(mockProductRepository)
	scope := &ledger.NoOpTransactionScope{
		ProductRepo:    productRepo,
		PurchaseRepo:   purchaseRepo,
		AdjustmentRepo: adjustmentRepo,
	}
	return NewInventoryService(scope, purchaseRepo, adjustmentRepo, zap.NewNop()), purchaseRepo, adjustmentRepo, productRepo
}

func TestInventoryService_RecordPurchase(t *testing.T) {
	ctx := context.Background()
	supplierID := uuid.New()
	productA := uuid.New()

	t.Run("increments stock and refreshes the purchase price", func(t *testing.T) {
		svc, purchaseRepo, _, productRepo := newTestService()

		purchaseRepo.On("Create", ctx, mock.AnythingOfType("*inventory.Purchase")).Return(nil)
		productRepo.On("AdjustStock", ctx, productA, 10).Return(nil)
		productRepo.On("SetPurchasePrice", ctx, productA, mock.MatchedBy(func(p decimal.Decimal) bool {
			return p.Equal(decimal.NewFromInt(70))
		})).Return(nil)

		resp, err := svc.RecordPurchase(ctx, RecordPurchaseRequest{
			SupplierID: supplierID,
			Items:      []PurchaseItemRequest{{ProductID: productA, Qty: 10, Price: decimal.NewFromInt(70)}},
		})

		require.NoError(t, err)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(700)))
		purchaseRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("missing supplier is rejected", func(t *testing.T) {
		svc, purchaseRepo, _, _ := newTestService()

		_, err := svc.RecordPurchase(ctx, RecordPurchaseRequest{
			Items: []PurchaseItemRequest{{ProductID: productA, Qty: 1, Price: decimal.NewFromInt(5)}},
		})

		require.Error(t, err)
		purchaseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stock failure aborts the purchase", func(t *testing.T) {
		svc, purchaseRepo, _, productRepo := newTestService()

		purchaseRepo.On("Create", ctx, mock.AnythingOfType("*inventory.Purchase")).Return(nil)
		productRepo.On("AdjustStock", ctx, productA, 2).Return(shared.ErrPersistenceFailure)

		_, err := svc.RecordPurchase(ctx, RecordPurchaseRequest{
			SupplierID: supplierID,
			Items:      []PurchaseItemRequest{{ProductID: productA, Qty: 2, Price: decimal.NewFromInt(30)}},
		})

		assert.ErrorIs(t, err, shared.ErrPersistenceFailure)
	})
}

func TestInventoryService_AdjustStock(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	product, _ := catalog.NewProduct("BRK-01", "Brake Pad", "Brakes", "pcs", decimal.NewFromInt(50), decimal.NewFromInt(80))

	t.Run("ADD applies a positive delta", func(t *testing.T) {
		svc, _, adjustmentRepo, productRepo := newTestService()

		productRepo.On("FindByID", ctx, productID).Return(product, nil)
		adjustmentRepo.On("Create", ctx, mock.AnythingOfType("*inventory.StockAdjustment")).Return(nil)
		productRepo.On("AdjustStock", ctx, productID, 5).Return(nil)

		resp, err := svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: productID,
			Type:      "ADD",
			Qty:       5,
			Reason:    "cycle count",
		})

		require.NoError(t, err)
		assert.Equal(t, "ADD", resp.Type)
		productRepo.AssertExpectations(t)
	})

	t.Run("REMOVE applies a negative delta", func(t *testing.T) {
		svc, _, adjustmentRepo, productRepo := newTestService()

		productRepo.On("FindByID", ctx, productID).Return(product, nil)
		adjustmentRepo.On("Create", ctx, mock.AnythingOfType("*inventory.StockAdjustment")).Return(nil)
		productRepo.On("AdjustStock", ctx, productID, -3).Return(nil)

		_, err := svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: productID,
			Type:      "REMOVE",
			Qty:       3,
			Reason:    "damaged",
		})

		require.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		svc, _, adjustmentRepo, productRepo := newTestService()

		productRepo.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: productID,
			Type:      "ADD",
			Qty:       1,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		adjustmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		svc, _, adjustmentRepo, _ := newTestService()

		_, err := svc.AdjustStock(ctx, AdjustStockRequest{
			ProductID: productID,
			Type:      "SET",
			Qty:       1,
		})

		require.Error(t, err)
		adjustmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
