package checkout

import (
	"math"
)

// Fixed pricing constants. Deliberately not configurable: they are part of
// the brand's published shipping policy.
const (
	// FreeShippingAbove waives the shipping fee once the subtotal exceeds it.
	FreeShippingAbove = 2000
	// FlatShippingFee applies below the free-shipping threshold, in rupees.
	FlatShippingFee = 150
	// TaxRate is the GST fraction applied to the subtotal.
	TaxRate = 0.18
)

// Totals is the checkout amount breakdown, all whole rupees.
type Totals struct {
	Subtotal int `json:"subtotal"`
	Shipping int `json:"shipping"`
	Tax      int `json:"tax"`
	Total    int `json:"total"`
}

func ShippingFee(subtotal int) int {
	if subtotal > FreeShippingAbove {
		return 0
	}
	return FlatShippingFee
}

func Tax(subtotal int) int {
	return int(math.Round(float64(subtotal) * TaxRate))
}

func ComputeTotals(subtotal int) Totals {
	shipping := ShippingFee(subtotal)
	tax := Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
