package pricing

import "github.com/shopspring/decimal"

// Cart is a draft sale or service order: a list of lines plus at most one
// active adjustment. The discount/interest exclusivity rule is enforced
// here, inside the engine, so it holds no matter who calls it.
type Cart struct {
	lines    []Line
	discount *Adjustment
	interest *Adjustment
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddLine appends a line to the cart.
func (c *Cart) AddLine(l Line) {
	c.lines = append(c.lines, l)
}

// RemoveLine deletes the line at index i. Out-of-range indexes are ignored.
func (c *Cart) RemoveLine(i int) {
	if i < 0 || i >= len(c.lines) {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Lines returns the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Clear resets the cart to empty, dropping lines and adjustments.
func (c *Cart) Clear() {
	c.lines = nil
	c.discount = nil
	c.interest = nil
}

// Discount returns the active discount, or nil.
func (c *Cart) Discount() *Adjustment {
	return c.discount
}

// Interest returns the active interest charge, or nil.
func (c *Cart) Interest() *Adjustment {
	return c.interest
}

// ApplyDiscount activates or replaces the discount. It fails with
// ErrConflictingAdjustment while an interest charge is active, leaving all
// state untouched; the caller must clear the interest first. An adjustment
// whose computed amount against the current subtotal is exactly zero clears
// the slot instead of activating.
func (c *Cart) ApplyDiscount(a Adjustment) error {
	if a.DiscountAmount(c.Subtotal()).IsZero() {
		c.discount = nil
		return nil
	}
	if c.interest != nil {
		return ErrConflictingAdjustment
	}
	c.discount = &a
	return nil
}

// ApplyInterest activates or replaces the interest charge. Symmetric to
// ApplyDiscount.
func (c *Cart) ApplyInterest(a Adjustment) error {
	if a.InterestAmount(c.Subtotal()).IsZero() {
		c.interest = nil
		return nil
	}
	if c.discount != nil {
		return ErrConflictingAdjustment
	}
	c.interest = &a
	return nil
}

// ClearDiscount deactivates the discount. Always succeeds.
func (c *Cart) ClearDiscount() {
	c.discount = nil
}

// ClearInterest deactivates the interest charge. Always succeeds.
func (c *Cart) ClearInterest() {
	c.interest = nil
}

// Subtotal recomputes the sum of all line totals from current state.
func (c *Cart) Subtotal() decimal.Decimal {
	return ComputeSubtotal(c.lines)
}

// Summary holds the computed amounts for a cart.
type Summary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	InterestAmount decimal.Decimal `json:"interestAmount"`
	Total          decimal.Decimal `json:"total"`
}

// Summary recomputes subtotal, effective adjustment amounts and total.
func (c *Cart) Summary() Summary {
	sub := c.Subtotal()
	disc := decimal.Zero
	if c.discount != nil {
		disc = c.discount.DiscountAmount(sub)
	}
	intr := decimal.Zero
	if c.interest != nil {
		intr = c.interest.InterestAmount(sub)
	}
	return Summary{
		Subtotal:       sub,
		DiscountAmount: disc,
		InterestAmount: intr,
		Total:          ComputeTotal(sub, disc, intr),
	}
}

// ComputeSubtotal sums line totals in array order. Each addend is already
// clamped to zero by the line itself, so the result is never negative.
func ComputeSubtotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// ComputeTotal applies the adjustment amounts to a subtotal and clamps the
// result to zero. It deliberately does not assume exclusivity: if both
// amounts are non-zero it still computes the plain formula; the cart is
// responsible for never letting that happen.
func ComputeTotal(subtotal, discountAmount, interestAmount decimal.Decimal) decimal.Decimal {
	total := subtotal.Sub(discountAmount).Add(interestAmount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
