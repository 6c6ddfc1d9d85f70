package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"puntoventa-backend/pricing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "$0"},
		{"integer", 1500, "$1.500"},
		{"cents kept", 2599.99, "$2.599,99"},
		{"single decimal trimmed", 1234.5, "$1.234,5"},
		{"million grouping", 1000000, "$1.000.000"},
		{"large with cents", 1234567.89, "$1.234.567,89"},
		{"small", 0.5, "$0,5"},
		{"nan degrades to zero", math.NaN(), "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount))
		})
	}
}

func TestFormatMoneyFixed(t *testing.T) {
	assert.Equal(t, "$1.500,00", FormatMoneyFixed(1500))
	assert.Equal(t, "$1.234,50", FormatMoneyFixed(1234.5))
	assert.Equal(t, "$0,00", FormatMoneyFixed(0))
	assert.Equal(t, "$1.234.567,89", FormatMoneyFixed(1234567.89))
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     pricing.QuantityUnit
		want     string
	}{
		{"liquid strips trailing zeros", 2.5, pricing.LiquidLiter, "2.5"},
		{"liquid whole number", 3, pricing.LiquidLiter, "3"},
		{"liquid three decimals", 1.125, pricing.LiquidLiter, "1.125"},
		{"unit rounds up", 2.567, pricing.Unit, "3"},
		{"unit rounds down", 2.4, pricing.Unit, "2"},
		{"unit whole", 7, pricing.Unit, "7"},
		{"nan liquid", math.NaN(), pricing.LiquidLiter, "0"},
		{"nan unit", math.NaN(), pricing.Unit, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuantity(tt.quantity, tt.unit))
		})
	}
}

func TestParsePriceInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"with symbol and cents", "$10.000,50", 10000.50},
		{"thousands only", "1.234", 1234},
		{"decimal comma", "12,75", 12.75},
		{"plain integer", "500", 500},
		{"symbol with space", "$ 1.500", 1500},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"multiple commas", "1,2,3", 0},
		{"lone comma", ",", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePriceInput(tt.input), 1e-9)
		})
	}
}

func TestMoneyRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 0.5, 1, 99.99, 999.99, 1234.56, 10000, 123456.78, 9999999.99}
	for _, a := range amounts {
		assert.InDelta(t, a, ParsePriceInput(FormatMoney(a)), 1e-9, "amount %v", a)
		assert.InDelta(t, a, ParsePriceInput(FormatMoneyFixed(a)), 1e-9, "amount %v", a)
	}
}

func TestFormatPriceInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"regroups thousands", "1234567", "1.234.567"},
		{"keeps decimal tail", "1234,5", "1.234,5"},
		{"trailing comma kept", "1234,", "1.234,"},
		{"leading comma kept", ",5", ",5"},
		{"strips non numeric", "12a3b4", "1.234"},
		{"strips old separators", "$1.500", "1.500"},
		{"second comma kept verbatim", "1,2,3", "1,2,3"},
		{"non numeric only", "abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPriceInput(tt.input))
		})
	}
}
