package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/catalog"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestReportService_Dashboard(t *testing.T) {
	ctx := context.Background()

	newService := func() (*ReportService, *mockBillRepository, *mockProductRepository, *mockCustomerRepository) {
		billRepo := new(mockBillRepository)
		productRepo := new(mockProductRepository)
		customerRepo := new(mockCustomerRepository)
		svc := NewReportService(billRepo, productRepo, customerRepo, nil, zap.NewNop())
		return svc, billRepo, productRepo, customerRepo
	}

	t.Run("aggregates the day figures", func(t *testing.T) {
		svc, billRepo, productRepo, customerRepo := newService()

		billRepo.On("SumTotalsBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(decimal.NewFromInt(1500), int64(4), nil).Once()
		billRepo.On("SumTotalsBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return(decimal.NewFromInt(1000), int64(3), nil).Once()
		productRepo.On("CountLowStock", ctx, catalog.LowStockThreshold).Return(int64(2), nil)
		customerRepo.On("SumOutstanding", ctx).Return(decimal.NewFromInt(4200), nil)

		resp, err := svc.Dashboard(ctx)

		require.NoError(t, err)
		assert.True(t, resp.TodaySales.Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, int64(4), resp.TodayBills)
		assert.True(t, resp.GrowthPercent.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, int64(2), resp.LowStockCount)
		assert.True(t, resp.OutstandingCredit.Equal(decimal.NewFromInt(4200)))
	})

	t.Run("growth is 100 when yesterday was empty", func(t *testing.T) {
		svc, billRepo, productRepo, customerRepo := newService()

		billRepo.On("SumTotalsBetween", ctx, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(500), int64(1), nil).Once()
		billRepo.On("SumTotalsBetween", ctx, mock.Anything, mock.Anything).
			Return(decimal.Zero, int64(0), nil).Once()
		productRepo.On("CountLowStock", ctx, catalog.LowStockThreshold).Return(int64(0), nil)
		customerRepo.On("SumOutstanding", ctx).Return(decimal.Zero, nil)

		resp, err := svc.Dashboard(ctx)

		require.NoError(t, err)
		assert.True(t, resp.GrowthPercent.Equal(decimal.NewFromInt(100)))
	})

	t.Run("growth is 0 with no sales at all", func(t *testing.T) {
		svc, billRepo, productRepo, customerRepo := newService()

		billRepo.On("SumTotalsBetween", ctx, mock.Anything, mock.Anything).
			Return(decimal.Zero, int64(0), nil)
		productRepo.On("CountLowStock", ctx, catalog.LowStockThreshold).Return(int64(0), nil)
		customerRepo.On("SumOutstanding", ctx).Return(decimal.Zero, nil)

		resp, err := svc.Dashboard(ctx)

		require.NoError(t, err)
		assert.True(t, resp.GrowthPercent.IsZero())
	})

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		billRepo := new(mockBillRepository)
		cache := new(mockCache)
		svc := NewReportService(billRepo, new(mockProductRepository), new(mockCustomerRepository), cache, zap.NewNop())

		cache.On("Get", ctx, "report:dashboard", mock.Anything).Return(true, nil)

		_, err := svc.Dashboard(ctx)

		require.NoError(t, err)
		billRepo.AssertNotCalled(t, "SumTotalsBetween", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache miss computes and writes through", func(t *testing.T) {
		billRepo := new(mockBillRepository)
		productRepo := new(mockProductRepository)
		customerRepo := new(mockCustomerRepository)
		cache := new(mockCache)
		svc := NewReportService(billRepo, productRepo, customerRepo, cache, zap.NewNop())

		cache.On("Get", ctx, "report:dashboard", mock.Anything).Return(false, nil)
		billRepo.On("SumTotalsBetween", ctx, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(100), int64(1), nil)
		productRepo.On("CountLowStock", ctx, catalog.LowStockThreshold).Return(int64(0), nil)
		customerRepo.On("SumOutstanding", ctx).Return(decimal.Zero, nil)
		cache.On("Set", ctx, "report:dashboard", mock.Anything, 60*time.Second).Return(nil)

		_, err := svc.Dashboard(ctx)

		require.NoError(t, err)
		cache.AssertExpectations(t)
	})
}

func TestGrowthPercent(t *testing.T) {
	assert.True(t, growthPercent(decimal.NewFromInt(150), decimal.NewFromInt(100)).Equal(decimal.NewFromInt(50)))
	assert.True(t, growthPercent(decimal.NewFromInt(50), decimal.NewFromInt(100)).Equal(decimal.NewFromInt(-50)))
	assert.True(t, growthPercent(decimal.Zero, decimal.NewFromInt(100)).Equal(decimal.NewFromInt(-100)))
}
