package inventory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPurchase(t *testing.T) {
	supplierID := uuid.New()
	productID := uuid.New()

	t.Run("computes line amounts and total", func(t *testing.T) {
		p, err := NewPurchase(supplierID, []PurchaseItemInput{
			{ProductID: productID, Qty: 10, Price: decimal.NewFromInt(70)},
			{ProductID: uuid.New(), Qty: 2, Price: decimal.NewFromInt(150)},
		}, time.Now())
		require.NoError(t, err)
		assert.True(t, p.TotalAmount.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, p.ID, p.Items[0].PurchaseID)
	})

	t.Run("rejects nil supplier", func(t *testing.T) {
		_, err := NewPurchase(uuid.Nil, []PurchaseItemInput{
			{ProductID: productID, Qty: 1, Price: decimal.NewFromInt(10)},
		}, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewPurchase(supplierID, nil, time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects non-positive qty", func(t *testing.T) {
		_, err := NewPurchase(supplierID, []PurchaseItemInput{
			{ProductID: productID, Qty: 0, Price: decimal.NewFromInt(10)},
		}, time.Now())
		assert.Error(t, err)
	})
}

func TestNewStockAdjustment(t *testing.T) {
	productID := uuid.New()

	t.Run("ADD applies a positive delta", func(t *testing.T) {
		a, err := NewStockAdjustment(productID, AdjustmentTypeAdd, 5, "cycle count")
		require.NoError(t, err)
		assert.Equal(t, 5, a.StockDelta())
	})

	t.Run("REMOVE applies a negative delta", func(t *testing.T) {
		a, err := NewStockAdjustment(productID, AdjustmentTypeRemove, 3, "damaged")
		require.NoError(t, err)
		assert.Equal(t, -3, a.StockDelta())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewStockAdjustment(productID, AdjustmentType("SET"), 1, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive qty", func(t *testing.T) {
		_, err := NewStockAdjustment(productID, AdjustmentTypeAdd, 0, "")
		assert.Error(t, err)
	})
}
