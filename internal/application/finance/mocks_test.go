package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/sparepos/backend/internal/domain/billing"
	"github.com/sparepos/backend/internal/domain/finance"
	"github.com/sparepos/backend/internal/domain/partner"
	"github.com/sparepos/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// Mock implementations

type mockPaymentOutRepository struct {
	mock.Mock
}

func (m *mockPaymentOutRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.PaymentOut, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]billing.PaymentOut), args.Get(1).(int64), args.Error(2)
}

func (m *mockPaymentOutRepository) Create(ctx context.Context, payment *billing.PaymentOut) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type mockSupplierRepository struct {
	mock.Mock
}

func (m *mockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *mockSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]partner.Supplier), args.Get(1).(int64), args.Error(2)
}

func (m *mockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockExpenseRepository struct {
	mock.Mock
}

func (m *mockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]finance.Expense), args.Get(1).(int64), args.Error(2)
}

func (m *mockExpenseRepository) Create(ctx context.Context, expense *finance.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *mockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockExpenseRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
