package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSalesReturnService_Create(t *testing.T) {
	ctx := context.Background()
	productA := uuid.New()

	newService := func() (*SalesReturnService, *mockSalesReturnRepository, *mockProductRepository, *mockCustomerRepository) {
		returnRepo := new(mockSalesReturnRepository)
		productRepo := new(mockProductRepository)
		customerRepo := new(mockCustomerRepository)
		scope := testScope(new(mockBillRepository), returnRepo, new(mockPaymentRepository), productRepo, customerRepo)
		return NewSalesReturnService(scope, returnRepo, testLogger()), returnRepo, productRepo, customerRepo
	}

	t.Run("restores stock and credits the customer", func(t *testing.T) {
		svc, returnRepo, productRepo, customerRepo := newService()
		customerID := uuid.New()
		billID := int64(12)

		returnRepo.On("Create", ctx, mock.AnythingOfType("*billing.SalesReturn")).Return(nil)
		productRepo.On("AdjustStock", ctx, productA, 2).Return(nil)
		customerRepo.On("AdjustBalance", ctx, customerID, decimalEq(decimal.NewFromInt(-180))).Return(nil)

		resp, err := svc.Create(ctx, CreateReturnRequest{
			BillID:     &billID,
			CustomerID: &customerID,
			Items:      []ReturnItemRequest{{ProductID: productA, Qty: 2, Price: decimal.NewFromInt(90)}},
		})

		require.NoError(t, err)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(180)))
		returnRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
		customerRepo.AssertExpectations(t)
	})

	t.Run("walk-in return restores stock without a ledger entry", func(t *testing.T) {
		svc, returnRepo, productRepo, customerRepo := newService()

		returnRepo.On("Create", ctx, mock.AnythingOfType("*billing.SalesReturn")).Return(nil)
		productRepo.On("AdjustStock", ctx, productA, 1).Return(nil)

		_, err := svc.Create(ctx, CreateReturnRequest{
			Items: []ReturnItemRequest{{ProductID: productA, Qty: 1, Price: decimal.NewFromInt(60)}},
		})

		require.NoError(t, err)
		customerRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty return is rejected", func(t *testing.T) {
		svc, returnRepo, _, _ := newService()

		_, err := svc.Create(ctx, CreateReturnRequest{})

		require.Error(t, err)
		returnRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stock failure aborts the return", func(t *testing.T) {
		svc, returnRepo, productRepo, _ := newService()

		returnRepo.On("Create", ctx, mock.AnythingOfType("*billing.SalesReturn")).Return(nil)
		productRepo.On("AdjustStock", ctx, productA, 4).Return(shared.ErrPersistenceFailure)

		_, err := svc.Create(ctx, CreateReturnRequest{
			Items: []ReturnItemRequest{{ProductID: productA, Qty: 4, Price: decimal.NewFromInt(25)}},
		})

		assert.ErrorIs(t, err, shared.ErrPersistenceFailure)
	})
}
