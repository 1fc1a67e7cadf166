package storefront

import "github.com/gardenlawn/shopfeed/internal/domain"

// TaxPricer converts a catalog base price into the tax-inclusive amount
// shown to consumers. Channel feeds always carry gross prices.
type TaxPricer interface {
	TaxPrice(p domain.Product, basePrice float64) float64
}

// FlatRateTaxer applies a single VAT rate to every product.
type FlatRateTaxer struct {
	Rate float64 // e.g. 0.23 for 23% VAT
}

func (t FlatRateTaxer) TaxPrice(p domain.Product, basePrice float64) float64 {
	_ = p
	if t.Rate <= 0 {
		return basePrice
	}
	return basePrice * (1 + t.Rate)
}
