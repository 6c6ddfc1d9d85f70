// Package format renders and parses amounts for the Argentine display
// convention: "$" prefix, "." as thousands separator, "," as decimal
// separator. All functions are total; garbage input degrades to zero (or
// the empty string) so a form can keep calling them while the user types.
package format

import (
	"math"
	"strconv"
	"strings"

	"puntoventa-backend/pricing"
)

const currencySymbol = "$"

// FormatMoney renders an amount with up to 2 decimal places, trimming
// trailing zeros ("$1.500" rather than "$1.500,00"). Used for cart rows
// and listings.
func FormatMoney(amount float64) string {
	return currencySymbol + formatNumber(amount, 2, true)
}

// FormatMoneyFixed renders an amount with exactly 2 decimal places.
// Used for manual price entry fields.
func FormatMoneyFixed(amount float64) string {
	return currencySymbol + formatNumber(amount, 2, false)
}

// FormatQuantity renders a quantity according to its unit: UNIT quantities
// round to the nearest whole number, LIQUID_LITER quantities keep up to 3
// decimal places with trailing zeros stripped.
func FormatQuantity(quantity float64, unit pricing.QuantityUnit) string {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return "0"
	}
	if unit == pricing.Unit {
		return strconv.FormatFloat(math.Round(quantity), 'f', 0, 64)
	}
	s := strconv.FormatFloat(quantity, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

// ParsePriceInput extracts the numeric value from a displayed price. It
// tolerates the currency symbol, strips thousands separators and converts
// the first comma into a decimal point. Anything unparseable yields 0.
func ParsePriceInput(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, currencySymbol)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatPriceInput is the live-typing mask for price fields: it drops every
// character that is not a digit or a comma, treats the first comma as the
// decimal separator keeping whatever follows it verbatim, and regroups the
// integer part with thousands separators.
func FormatPriceInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return ""
	}

	intPart := clean
	tail := ""
	if i := strings.Index(clean, ","); i >= 0 {
		intPart = clean[:i]
		tail = clean[i:]
	}
	return groupThousands(intPart) + tail
}

// formatNumber renders f with the given number of decimal places, locale
// separators applied. trim drops trailing zeros in the decimal part.
func formatNumber(f float64, places int, trim bool) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	s := strconv.FormatFloat(f, 'f', places, 64)

	intPart := s
	decPart := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart = s[:i]
		decPart = s[i+1:]
	}

	if trim {
		decPart = strings.TrimRight(decPart, "0")
	}

	out := groupThousands(intPart)
	if decPart != "" {
		out += "," + decPart
	}
	return out
}

// groupThousands inserts a "." every 3 digits counting from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
