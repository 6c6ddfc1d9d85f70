package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, price, qty float64, unit QuantityUnit) LineItem {
	t.Helper()
	line, err := NewLineItem("prod-1", "Producto", decimal.NewFromFloat(price), decimal.NewFromFloat(qty), unit)
	require.NoError(t, err)
	return line
}

func assertDecimal(t *testing.T, expected float64, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.NewFromFloat(expected)), "expected %v, got %s", expected, actual)
}

func TestPercentageDiscount(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 10000, 1, Unit))

	err := cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(10)})
	require.NoError(t, err)

	summary := cart.Summary()
	assertDecimal(t, 10000, summary.Subtotal)
	assertDecimal(t, 1000, summary.DiscountAmount)
	assertDecimal(t, 0, summary.InterestAmount)
	assertDecimal(t, 9000, summary.Total)
}

func TestFlatInterest(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 2500, 2, Unit))

	err := cart.ApplyInterest(Adjustment{Kind: FixedAmount, Value: decimal.NewFromInt(750)})
	require.NoError(t, err)

	summary := cart.Summary()
	assertDecimal(t, 5000, summary.Subtotal)
	assertDecimal(t, 750, summary.InterestAmount)
	assertDecimal(t, 5750, summary.Total)
}

func TestConflictingAdjustmentRejected(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 1000, 1, Unit))

	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(10)}))
	assertDecimal(t, 900, cart.Summary().Total)

	err := cart.ApplyInterest(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, ErrConflictingAdjustment)

	// Prior state is untouched
	assert.Nil(t, cart.Interest())
	assert.NotNil(t, cart.Discount())
	assertDecimal(t, 900, cart.Summary().Total)
}

func TestConflictIsSymmetric(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 1000, 1, Unit))

	require.NoError(t, cart.ApplyInterest(Adjustment{Kind: FixedAmount, Value: decimal.NewFromInt(100)}))
	err := cart.ApplyDiscount(Adjustment{Kind: FixedAmount, Value: decimal.NewFromInt(50)})
	assert.ErrorIs(t, err, ErrConflictingAdjustment)
	assert.Nil(t, cart.Discount())
	assertDecimal(t, 1100, cart.Summary().Total)
}

func TestClearReenablesOtherAdjustment(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 1000, 1, Unit))

	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(10)}))
	cart.ClearDiscount()
	assert.Nil(t, cart.Discount())

	require.NoError(t, cart.ApplyInterest(Adjustment{Kind: FixedAmount, Value: decimal.NewFromInt(200)}))
	assertDecimal(t, 1200, cart.Summary().Total)
}

func TestReapplySameKindReplaces(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 1000, 1, Unit))

	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(10)}))
	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(20)}))

	assertDecimal(t, 200, cart.Summary().DiscountAmount)
	assertDecimal(t, 800, cart.Summary().Total)
}

func TestZeroAdjustmentClearsSlot(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 1000, 1, Unit))

	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(10)}))
	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.Zero}))
	assert.Nil(t, cart.Discount())
	assertDecimal(t, 1000, cart.Summary().Total)

	// A zero adjustment never conflicts, even with the other slot active
	require.NoError(t, cart.ApplyInterest(Adjustment{Kind: FixedAmount, Value: decimal.NewFromInt(100)}))
	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: FixedAmount, Value: decimal.Zero}))
	assert.NotNil(t, cart.Interest())
}

func TestDiscountClampedToSubtotal(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 1000, 1, Unit))

	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: FixedAmount, Value: decimal.NewFromInt(5000)}))

	summary := cart.Summary()
	assertDecimal(t, 1000, summary.DiscountAmount)
	assertDecimal(t, 0, summary.Total)
}

func TestComputeTotalIsDefensive(t *testing.T) {
	// Both amounts set: the formula still applies, no special casing
	total := ComputeTotal(decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.NewFromInt(20))
	assertDecimal(t, 70, total)

	// Never negative
	total = ComputeTotal(decimal.NewFromInt(100), decimal.NewFromInt(200), decimal.Zero)
	assertDecimal(t, 0, total)
}

func TestSubtotalSumsInArrayOrder(t *testing.T) {
	lines := []Line{
		mustLine(t, 100, 2, Unit),
		mustLine(t, 50.5, 1.5, LiquidLiter),
	}
	assertDecimal(t, 275.75, ComputeSubtotal(lines))
}

func TestSubtotalGrowsMonotonically(t *testing.T) {
	cart := NewCart()
	previous := decimal.Zero

	cart.AddLine(mustLine(t, 100, 1, Unit))
	assert.True(t, cart.Subtotal().GreaterThanOrEqual(previous))
	previous = cart.Subtotal()

	// A zero-price line leaves the subtotal unchanged
	zeroPrice, err := NewLineItem("p", "Regalo", decimal.Zero, decimal.NewFromInt(1), Unit)
	require.NoError(t, err)
	cart.AddLine(zeroPrice)
	assert.True(t, cart.Subtotal().Equal(previous))

	cart.AddLine(mustLine(t, 30, 3, Unit))
	assert.True(t, cart.Subtotal().GreaterThan(previous))
}

func TestManualServiceContributesFlatPrice(t *testing.T) {
	service, err := NewManualService("s1", "st1", "Cambio de aceite", decimal.NewFromInt(3000))
	require.NoError(t, err)

	cart := NewCart()
	cart.AddLine(service)
	assertDecimal(t, 3000, cart.Subtotal())
}

func TestItemizedServiceSumsProducts(t *testing.T) {
	products := []LineItem{
		mustLine(t, 1200, 4, LiquidLiter),
		mustLine(t, 500, 1, Unit),
	}
	service := NewItemizedService("s1", "st1", "Cambio de aceite", products)

	cart := NewCart()
	cart.AddLine(service)
	assertDecimal(t, 5300, cart.Subtotal())
}

func TestServiceTotalRecomputedAfterEdit(t *testing.T) {
	service := NewItemizedService("s1", "st1", "Cambio de aceite", []LineItem{
		mustLine(t, 1000, 1, Unit),
	})
	assertDecimal(t, 1000, service.LineTotal())

	require.NoError(t, service.Products[0].SetQuantity(decimal.NewFromInt(3)))
	assertDecimal(t, 3000, service.LineTotal())
}

func TestManualServiceRejectsNegativePrice(t *testing.T) {
	_, err := NewManualService("s1", "st1", "Engrase", decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, ErrManualPriceRequired)
}

func TestNegativeLineDoesNotDragSubtotal(t *testing.T) {
	bad := LineItem{UnitPrice: decimal.NewFromInt(-500), Quantity: decimal.NewFromInt(2), Unit: Unit}
	assertDecimal(t, 0, bad.LineTotal())

	cart := NewCart()
	cart.AddLine(bad)
	cart.AddLine(mustLine(t, 100, 1, Unit))
	assertDecimal(t, 100, cart.Subtotal())
}

func TestRemoveLine(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 100, 1, Unit))
	cart.AddLine(mustLine(t, 200, 1, Unit))

	cart.RemoveLine(0)
	assertDecimal(t, 200, cart.Subtotal())

	// Out of range is ignored
	cart.RemoveLine(5)
	cart.RemoveLine(-1)
	assert.Len(t, cart.Lines(), 1)
}

func TestClearResetsEverything(t *testing.T) {
	cart := NewCart()
	cart.AddLine(mustLine(t, 100, 1, Unit))
	require.NoError(t, cart.ApplyDiscount(Adjustment{Kind: Percentage, Value: decimal.NewFromInt(10)}))

	cart.Clear()
	assert.Empty(t, cart.Lines())
	assert.Nil(t, cart.Discount())
	assertDecimal(t, 0, cart.Subtotal())
}
