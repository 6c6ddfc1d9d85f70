package format

import "puntoventa-backend/pricing"

// SummaryDisplay holds the formatted strings for a computed cart summary.
type SummaryDisplay struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discountAmount"`
	InterestAmount string `json:"interestAmount"`
	Total          string `json:"total"`
}

// ForSummary formats each amount of a summary for display.
func ForSummary(s pricing.Summary) SummaryDisplay {
	return SummaryDisplay{
		Subtotal:       FormatMoney(s.Subtotal.InexactFloat64()),
		DiscountAmount: FormatMoney(s.DiscountAmount.InexactFloat64()),
		InterestAmount: FormatMoney(s.InterestAmount.InexactFloat64()),
		Total:          FormatMoney(s.Total.InexactFloat64()),
	}
}
