package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStepperForUnitProducts(t *testing.T) {
	q := Increment(decimal.NewFromInt(1), Unit)
	assert.True(t, q.Equal(decimal.NewFromInt(2)), "got %s", q)

	q = Decrement(decimal.NewFromInt(2), Unit)
	assert.True(t, q.Equal(decimal.NewFromInt(1)), "got %s", q)

	// Floor-clamped at 1: the stepper never reaches zero
	q = Decrement(decimal.NewFromInt(1), Unit)
	assert.True(t, q.Equal(decimal.NewFromInt(1)), "got %s", q)
}

func TestStepperForLiquidProducts(t *testing.T) {
	q := Increment(decimal.NewFromFloat(0.5), LiquidLiter)
	assert.True(t, q.Equal(decimal.NewFromInt(1)), "got %s", q)

	q = Decrement(decimal.NewFromFloat(1.5), LiquidLiter)
	assert.True(t, q.Equal(decimal.NewFromInt(1)), "got %s", q)

	// Floor-clamped at 0.001
	q = Decrement(decimal.NewFromFloat(0.5), LiquidLiter)
	assert.True(t, q.Equal(decimal.NewFromFloat(0.001)), "got %s", q)

	q = Decrement(decimal.NewFromFloat(0.001), LiquidLiter)
	assert.True(t, q.Equal(decimal.NewFromFloat(0.001)), "got %s", q)
}

func TestQuickQuantities(t *testing.T) {
	unit := QuickQuantities(Unit)
	wantUnit := []float64{1, 3, 5, 7, 10}
	assert.Len(t, unit, len(wantUnit))
	for i, v := range wantUnit {
		assert.True(t, unit[i].Equal(decimal.NewFromFloat(v)), "unit preset %d: got %s", i, unit[i])
	}

	liquid := QuickQuantities(LiquidLiter)
	wantLiquid := []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5}
	assert.Len(t, liquid, len(wantLiquid))
	for i, v := range wantLiquid {
		assert.True(t, liquid[i].Equal(decimal.NewFromFloat(v)), "liquid preset %d: got %s", i, liquid[i])
	}
}

func TestStepAndMinPerUnit(t *testing.T) {
	assert.True(t, Step(Unit).Equal(decimal.NewFromInt(1)))
	assert.True(t, Step(LiquidLiter).Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, MinQuantity(Unit).Equal(decimal.NewFromInt(1)))
	assert.True(t, MinQuantity(LiquidLiter).Equal(decimal.NewFromFloat(0.001)))
}
