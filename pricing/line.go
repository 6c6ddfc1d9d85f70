// Package pricing computes sale and service order totals: line aggregation,
// the mutually exclusive discount/interest adjustment rule and unit-aware
// quantity handling. Everything here is a pure computation over the values
// passed in; the package holds no shared state and does no I/O.
package pricing

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// QuantityUnit classifies how a product is counted.
type QuantityUnit string

const (
	// Unit products are counted in whole pieces.
	Unit QuantityUnit = "UNIT"
	// LiquidLiter products are measured in liters, up to 3 decimal places.
	LiquidLiter QuantityUnit = "LIQUID_LITER"
)

// IsValid reports whether u is one of the known units.
func (u QuantityUnit) IsValid() bool {
	return u == Unit || u == LiquidLiter
}

var (
	// ErrInvalidQuantity is returned when a line item quantity is not
	// positive after unit normalization.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrConflictingAdjustment is returned when applying a discount while
	// an interest charge is active, or vice versa.
	ErrConflictingAdjustment = errors.New("a discount and an interest charge cannot be active at the same time")
	// ErrManualPriceRequired is returned when a service line item has no
	// products and no manual price to fall back on.
	ErrManualPriceRequired = errors.New("a service without products requires a manual price")
)

// Line is one row of a cart: either a LineItem or a ServiceLineItem.
type Line interface {
	// LineTotal recomputes the row total from current state. Never negative.
	LineTotal() decimal.Decimal
}

// LineItem is a product row in a sale cart.
type LineItem struct {
	ProductID      string
	Name           string
	Description    string
	UnitPrice      decimal.Decimal
	Quantity       decimal.Decimal
	Unit           QuantityUnit
	AvailableStock decimal.Decimal
}

// NewLineItem builds a line item, normalizing the quantity for the unit.
// Fractional quantities for Unit products are rounded to the nearest whole
// number before being accepted; a quantity that is not positive after
// normalization is rejected.
func NewLineItem(productID, name string, unitPrice, quantity decimal.Decimal, unit QuantityUnit) (LineItem, error) {
	q := NormalizeQuantity(quantity, unit)
	if !q.IsPositive() {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  q,
		Unit:      unit,
	}, nil
}

// SetQuantity replaces the quantity, applying the same normalization and
// validation as NewLineItem.
func (li *LineItem) SetQuantity(quantity decimal.Decimal) error {
	q := NormalizeQuantity(quantity, li.Unit)
	if !q.IsPositive() {
		return ErrInvalidQuantity
	}
	li.Quantity = q
	return nil
}

// LineTotal is unit price times quantity, clamped to zero so malformed
// upstream data can never drag a subtotal negative.
func (li LineItem) LineTotal() decimal.Decimal {
	t := li.UnitPrice.Mul(li.Quantity)
	if t.IsNegative() {
		return decimal.Zero
	}
	return t
}

// NormalizeQuantity rounds a quantity to the precision its unit allows:
// whole numbers for Unit, 3 decimal places for LiquidLiter.
func NormalizeQuantity(q decimal.Decimal, unit QuantityUnit) decimal.Decimal {
	if unit == Unit {
		return q.Round(0)
	}
	return q.Round(3)
}

// FromFloat converts a stored float into a decimal, mapping NaN and
// infinities to zero so persistence-layer garbage cannot panic the engine.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
