package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalesReturn(t *testing.T) {
	productID := uuid.New()

	t.Run("computes total from return items", func(t *testing.T) {
		billID := int64(1001)
		customerID := uuid.New()
		ret, err := NewSalesReturn(&billID, &customerID, []ReturnItemInput{
			{ProductID: productID, Qty: 2, Price: d(50)},
		})
		require.NoError(t, err)
		assert.True(t, ret.TotalAmount.Equal(d(100)))
		assert.True(t, ret.RefundsCustomer())
		assert.Equal(t, ret.ID, ret.Items[0].SalesReturnID)
	})

	t.Run("return without customer refunds nobody", func(t *testing.T) {
		ret, err := NewSalesReturn(nil, nil, []ReturnItemInput{
			{ProductID: productID, Qty: 1, Price: d(10)},
		})
		require.NoError(t, err)
		assert.False(t, ret.RefundsCustomer())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewSalesReturn(nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive qty", func(t *testing.T) {
		_, err := NewSalesReturn(nil, nil, []ReturnItemInput{
			{ProductID: productID, Qty: -1, Price: d(10)},
		})
		assert.Error(t, err)
	})
}

func TestNewPayment(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates payment", func(t *testing.T) {
		p, err := NewPayment(customerID, d(200), PaymentModeUPI, "part settlement")
		require.NoError(t, err)
		assert.Equal(t, customerID, p.CustomerID)
		assert.False(t, p.Date.IsZero())
	})

	t.Run("rejects nil customer", func(t *testing.T) {
		_, err := NewPayment(uuid.Nil, d(200), PaymentModeCash, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewPayment(customerID, decimal.Zero, PaymentModeCash, "")
		assert.Error(t, err)
	})
}
