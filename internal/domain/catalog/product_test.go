package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with normalized code", func(t *testing.T) {
		p, err := NewProduct("brk-001", "Brake Pad", "Brakes", "pcs",
			decimal.NewFromInt(80), decimal.NewFromInt(120))
		require.NoError(t, err)
		assert.Equal(t, "BRK-001", p.Code)
		assert.Equal(t, "Brake Pad", p.Name)
		assert.Equal(t, 0, p.Stock)
		assert.NotEqual(t, "", p.ID.String())
	})

	t.Run("defaults unit to pcs", func(t *testing.T) {
		p, err := NewProduct("BRK-002", "Brake Disc", "Brakes", "",
			decimal.Zero, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "pcs", p.Unit)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewProduct("", "Brake Pad", "Brakes", "pcs", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects invalid code characters", func(t *testing.T) {
		_, err := NewProduct("BRK 001", "Brake Pad", "Brakes", "pcs", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("BRK-001", "Brake Pad", "Brakes", "pcs",
			decimal.NewFromInt(-1), decimal.Zero)
		assert.Error(t, err)
	})
}

func TestProductUpdate(t *testing.T) {
	p, err := NewProduct("BRK-001", "Brake Pad", "Brakes", "pcs",
		decimal.NewFromInt(80), decimal.NewFromInt(120))
	require.NoError(t, err)

	t.Run("updates fields but never stock", func(t *testing.T) {
		p.Stock = 7
		err := p.Update("Brake Pad Pro", "Brakes", "box",
			decimal.NewFromInt(90), decimal.NewFromInt(140))
		require.NoError(t, err)
		assert.Equal(t, "Brake Pad Pro", p.Name)
		assert.Equal(t, "box", p.Unit)
		assert.Equal(t, 7, p.Stock)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := p.Update("", "Brakes", "pcs", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestProductIsLowStock(t *testing.T) {
	p := &Product{Stock: LowStockThreshold}
	assert.False(t, p.IsLowStock())

	p.Stock = LowStockThreshold - 1
	assert.True(t, p.IsLowStock())

	// Negative stock is a valid state and reported as low.
	p.Stock = -3
	assert.True(t, p.IsLowStock())
}
