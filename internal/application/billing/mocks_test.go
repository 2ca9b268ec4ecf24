package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/application/ledger"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock implementations

type mockBillRepository struct {
	mock.Mock
}

func (m *mockBillRepository) FindByID(ctx context.Context, id int64) (*billing.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *mockBillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Bill, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]billing.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *mockBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepository) UpdateHeader(ctx context.Context, bill *billing.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *mockBillRepository) DeleteWithItems(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBillRepository) SumTotalsBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int64), args.Error(2)
}

type mockSalesReturnRepository struct {
	mock.Mock
}

func (m *mockSalesReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.SalesReturn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.SalesReturn), args.Error(1)
}

func (m *mockSalesReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.SalesReturn, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]billing.SalesReturn), args.Get(1).(int64), args.Error(2)
}

func (m *mockSalesReturnRepository) Create(ctx context.Context, ret *billing.SalesReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

type mockPaymentRepository struct {
	mock.Mock
}

func (m *mockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Payment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]billing.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *billing.Payment) error {
	args := m.Called(ctx, payment)
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

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindByMobile(ctx context.Context, mobile string) (*partner.Customer, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]partner.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *mockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCustomerRepository) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	args := m.Called(ctx, mobile)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepository) AdjustBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *mockCustomerRepository) SumOutstanding(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// testScope wires the mocks into a pass-through transaction scope.
func testScope(bills *mockBillRepository, returns *mockSalesReturnRepository, payments *mockPaymentRepository, products *mockProductRepository, customers *mockCustomerRepository) *ledger.NoOpTransactionScope {
	return &ledger.NoOpTransactionScope{
		BillRepo:     bills,
		ReturnRepo:   returns,
		PaymentRepo:  payments,
		ProductRepo:  products,
		CustomerRepo: customers,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// decimalEq matches a decimal argument by value, not representation.
func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}
