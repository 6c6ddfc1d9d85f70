package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItemRoundsUnitQuantities(t *testing.T) {
	line, err := NewLineItem("p", "Filtro", decimal.NewFromInt(100), decimal.NewFromFloat(2.7), Unit)
	require.NoError(t, err)
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(3)), "got %s", line.Quantity)

	line, err = NewLineItem("p", "Filtro", decimal.NewFromInt(100), decimal.NewFromFloat(2.3), Unit)
	require.NoError(t, err)
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(2)), "got %s", line.Quantity)
}

func TestNewLineItemKeepsLiquidPrecision(t *testing.T) {
	line, err := NewLineItem("p", "Aceite", decimal.NewFromInt(100), decimal.NewFromFloat(2.125), LiquidLiter)
	require.NoError(t, err)
	assert.True(t, line.Quantity.Equal(decimal.NewFromFloat(2.125)), "got %s", line.Quantity)
}

func TestNewLineItemRejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewLineItem("p", "Filtro", decimal.NewFromInt(100), decimal.Zero, Unit)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Rounds to zero for a unit product
	_, err = NewLineItem("p", "Filtro", decimal.NewFromInt(100), decimal.NewFromFloat(0.3), Unit)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewLineItem("p", "Aceite", decimal.NewFromInt(100), decimal.NewFromFloat(-1), LiquidLiter)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSetQuantityNormalizes(t *testing.T) {
	line, err := NewLineItem("p", "Filtro", decimal.NewFromInt(100), decimal.NewFromInt(1), Unit)
	require.NoError(t, err)

	require.NoError(t, line.SetQuantity(decimal.NewFromFloat(4.6)))
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(5)), "got %s", line.Quantity)

	err = line.SetQuantity(decimal.NewFromFloat(0.2))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.True(t, line.Quantity.Equal(decimal.NewFromInt(5)), "quantity must be unchanged after a rejected update")
}

func TestLineTotal(t *testing.T) {
	line, err := NewLineItem("p", "Aceite", decimal.NewFromFloat(1250.50), decimal.NewFromFloat(2.5), LiquidLiter)
	require.NoError(t, err)
	assert.True(t, line.LineTotal().Equal(decimal.NewFromFloat(3126.25)), "got %s", line.LineTotal())
}

func TestFromFloatGuardsNonFinite(t *testing.T) {
	assert.True(t, FromFloat(math.NaN()).IsZero())
	assert.True(t, FromFloat(math.Inf(1)).IsZero())
	assert.True(t, FromFloat(math.Inf(-1)).IsZero())
	assert.True(t, FromFloat(12.5).Equal(decimal.NewFromFloat(12.5)))
}

func TestQuantityUnitValidation(t *testing.T) {
	assert.True(t, Unit.IsValid())
	assert.True(t, LiquidLiter.IsValid())
	assert.False(t, QuantityUnit("GRAMOS").IsValid())
	assert.False(t, QuantityUnit("").IsValid())
}
