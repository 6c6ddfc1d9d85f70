package pricing

import "github.com/shopspring/decimal"

// ServiceMode says how a service line item is priced.
type ServiceMode string

const (
	// ServiceItemized prices the service as the sum of its consumed products.
	ServiceItemized ServiceMode = "itemized"
	// ServiceManual prices the service with a flat, manually entered amount.
	ServiceManual ServiceMode = "manual"
)

// ServiceLineItem is a composite cart row: a labor/service type that either
// bundles the products it consumed or carries a manual flat price.
type ServiceLineItem struct {
	ID              string
	ServiceTypeID   string
	ServiceTypeName string
	Observations    string
	Notes           string
	Mode            ServiceMode
	Products        []LineItem
	ManualPrice     decimal.Decimal
}

// NewItemizedService builds a service line priced by its products.
func NewItemizedService(id, serviceTypeID, serviceTypeName string, products []LineItem) ServiceLineItem {
	return ServiceLineItem{
		ID:              id,
		ServiceTypeID:   serviceTypeID,
		ServiceTypeName: serviceTypeName,
		Mode:            ServiceItemized,
		Products:        products,
	}
}

// NewManualService builds a service line with a flat manual price.
func NewManualService(id, serviceTypeID, serviceTypeName string, manualPrice decimal.Decimal) (ServiceLineItem, error) {
	if manualPrice.IsNegative() {
		return ServiceLineItem{}, ErrManualPriceRequired
	}
	return ServiceLineItem{
		ID:              id,
		ServiceTypeID:   serviceTypeID,
		ServiceTypeName: serviceTypeName,
		Mode:            ServiceManual,
		ManualPrice:     manualPrice,
	}, nil
}

// LineTotal recomputes the service total from current state. Itemized
// services sum their nested product line totals; manual services return the
// flat price clamped to zero. A zero-value Mode falls back to the presence
// of products, so hand-built values still price sensibly.
func (s ServiceLineItem) LineTotal() decimal.Decimal {
	mode := s.Mode
	if mode == "" {
		if len(s.Products) == 0 {
			mode = ServiceManual
		} else {
			mode = ServiceItemized
		}
	}

	if mode == ServiceManual {
		if s.ManualPrice.IsNegative() {
			return decimal.Zero
		}
		return s.ManualPrice
	}

	total := decimal.Zero
	for _, p := range s.Products {
		total = total.Add(p.LineTotal())
	}
	return total
}
