package pricing

import "github.com/shopspring/decimal"

// Stepper rules for cart quantity controls. Unit products step by whole
// pieces and can never go below 1 through the stepper; liquid products step
// by half liters with a floor of 0.001. Removing a line entirely is a
// separate action, so the stepper never reaches zero.

var (
	unitStep   = decimal.NewFromInt(1)
	liquidStep = decimal.NewFromFloat(0.5)

	unitMin   = decimal.NewFromInt(1)
	liquidMin = decimal.NewFromFloat(0.001)

	unitQuick   = []float64{1, 3, 5, 7, 10}
	liquidQuick = []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5}
)

// Step returns the increment/decrement step for a unit.
func Step(unit QuantityUnit) decimal.Decimal {
	if unit == LiquidLiter {
		return liquidStep
	}
	return unitStep
}

// MinQuantity returns the lowest quantity the stepper may reach.
func MinQuantity(unit QuantityUnit) decimal.Decimal {
	if unit == LiquidLiter {
		return liquidMin
	}
	return unitMin
}

// Increment returns q raised by one step for the unit.
func Increment(q decimal.Decimal, unit QuantityUnit) decimal.Decimal {
	return NormalizeQuantity(q, unit).Add(Step(unit))
}

// Decrement returns q lowered by one step, floor-clamped at the unit's
// minimum so it never reaches or crosses zero.
func Decrement(q decimal.Decimal, unit QuantityUnit) decimal.Decimal {
	next := NormalizeQuantity(q, unit).Sub(Step(unit))
	if min := MinQuantity(unit); next.LessThan(min) {
		return min
	}
	return next
}

// QuickQuantities returns the preset quantity buttons for a unit. Presets
// set the quantity outright rather than incrementing it.
func QuickQuantities(unit QuantityUnit) []decimal.Decimal {
	src := unitQuick
	if unit == LiquidLiter {
		src = liquidQuick
	}
	out := make([]decimal.Decimal, len(src))
	for i, v := range src {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}
