package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPaymentService_Record(t *testing.T) {
	ctx := context.Background()

	newService := func() (*PaymentService, *mockPaymentRepository, *mockCustomerRepository) {
		paymentRepo := new(mockPaymentRepository)
		customerRepo := new(mockCustomerRepository)
		scope := testScope(new(mockBillRepository), new(mockSalesReturnRepository), paymentRepo, new(mockProductRepository), customerRepo)
		return NewPaymentService(scope, paymentRepo, testLogger()), paymentRepo, customerRepo
	}

	t.Run("decrements the customer balance by the amount", func(t *testing.T) {
		svc, paymentRepo, customerRepo := newService()
		customer, err := partner.NewCustomer("Ravi Traders", "9876543210", "", "")
		require.NoError(t, err)

		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*billing.Payment")).Return(nil)
		customerRepo.On("AdjustBalance", ctx, customer.ID, decimalEq(decimal.NewFromInt(-1500))).Return(nil)

		resp, err := svc.Record(ctx, RecordPaymentRequest{
			CustomerID: customer.ID,
			Amount:     decimal.NewFromInt(1500),
			Mode:       "UPI",
			Notes:      "against bill 42",
		})

		require.NoError(t, err)
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(1500)))
		paymentRepo.AssertExpectations(t)
		customerRepo.AssertExpectations(t)
	})

	t.Run("overpayment still goes through", func(t *testing.T) {
		svc, paymentRepo, customerRepo := newService()
		customer, err := partner.NewCustomer("Ravi Traders", "9876543210", "", "")
		require.NoError(t, err)
		customer.Balance = decimal.NewFromInt(200)

		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*billing.Payment")).Return(nil)
		customerRepo.On("AdjustBalance", ctx, customer.ID, decimalEq(decimal.NewFromInt(-500))).Return(nil)

		_, err = svc.Record(ctx, RecordPaymentRequest{
			CustomerID: customer.ID,
			Amount:     decimal.NewFromInt(500),
			Mode:       "CASH",
		})

		require.NoError(t, err)
		customerRepo.AssertExpectations(t)
	})

	t.Run("unknown customer is rejected", func(t *testing.T) {
		svc, paymentRepo, customerRepo := newService()
		id := uuid.New()

		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Record(ctx, RecordPaymentRequest{
			CustomerID: id,
			Amount:     decimal.NewFromInt(100),
			Mode:       "CASH",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		svc, paymentRepo, _ := newService()

		_, err := svc.Record(ctx, RecordPaymentRequest{
			CustomerID: uuid.New(),
			Amount:     decimal.Zero,
			Mode:       "CASH",
		})

		require.Error(t, err)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
