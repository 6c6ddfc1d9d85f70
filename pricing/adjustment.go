package pricing

import "github.com/shopspring/decimal"

// AdjustmentKind says how an adjustment value is interpreted.
type AdjustmentKind string

const (
	// Percentage adjustments compute their amount as base * value / 100.
	Percentage AdjustmentKind = "percentage"
	// FixedAmount adjustments use the value directly.
	FixedAmount AdjustmentKind = "amount"
)

// Adjustment is a discount or interest surcharge applied once to a cart's
// subtotal. The same shape serves both roles; the clamping rules differ per
// slot (a discount may not exceed the subtotal, interest has no upper bound).
type Adjustment struct {
	Kind  AdjustmentKind  `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// amountOn computes the raw adjustment amount against a base, before any
// slot-specific clamping. Unknown kinds compute to zero.
func (a Adjustment) amountOn(base decimal.Decimal) decimal.Decimal {
	switch a.Kind {
	case Percentage:
		return base.Mul(a.Value).Div(decimal.NewFromInt(100))
	case FixedAmount:
		return a.Value
	default:
		return decimal.Zero
	}
}

// DiscountAmount computes the effective discount against a base, clamped to
// [0, base]: a discount can never exceed the subtotal it applies to.
func (a Adjustment) DiscountAmount(base decimal.Decimal) decimal.Decimal {
	amt := a.amountOn(base)
	if amt.IsNegative() {
		return decimal.Zero
	}
	if amt.GreaterThan(base) {
		return base
	}
	return amt
}

// InterestAmount computes the effective interest against a base, clamped to
// be non-negative. There is no upper bound.
func (a Adjustment) InterestAmount(base decimal.Decimal) decimal.Decimal {
	amt := a.amountOn(base)
	if amt.IsNegative() {
		return decimal.Zero
	}
	return amt
}
