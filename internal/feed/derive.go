package feed

import (
	"strings"

	"github.com/gardenlawn/shopfeed/internal/domain"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

// Feed constants. Availability is fixed: the catalog source contract
// already filters to salable products, so the feed does not restate
// stock status per item.
const (
	AvailabilityInStock = "in stock"
	ConditionNew        = "new"
)

type DeriveDeps struct {
	Store  storefront.Context
	Tax    storefront.TaxPricer
	Images storefront.ImageResolver
}

// DeriveItem maps one catalog record to a feed item. It never fails:
// every optional attribute falls back to its documented default or is
// omitted, so a single dirty product cannot abort the feed.
func DeriveItem(p domain.Product, deps DeriveDeps) Item {
	item := Item{
		ID:           StripControl(p.SKU),
		Title:        StripControl(p.Name),
		Description:  deriveDescription(p),
		Link:         deps.Store.ProductURL(p),
		Availability: AvailabilityInStock,
		Condition:    ConditionNew,
		MPN:          StripControl(p.SKU),
		CustomLabel1: ClassifyMargin(deref(p.Cost), p.FinalPrice),
	}

	if deps.Images != nil {
		item.ImageLink = deps.Images.ResolveImageURL(p, storefront.ImageRoleBase)
	}

	gross := p.FinalPrice
	if deps.Tax != nil {
		gross = deps.Tax.TaxPrice(p, p.FinalPrice)
	}
	item.Price = FormatPrice(gross, deps.Store.CurrencyCode)

	item.Brand = deps.Store.DefaultBrand
	if p.Manufacturer != nil && strings.TrimSpace(*p.Manufacturer) != "" {
		item.Brand = StripControl(*p.Manufacturer)
	}

	if p.GTIN != nil && strings.TrimSpace(*p.GTIN) != "" {
		item.GTIN = StripControl(*p.GTIN)
	}

	return item
}

// deriveDescription picks the first of meta description, short
// description, name that still has content after tag and control
// stripping. Checking post-sanitization matters: a description that is
// nothing but markup or junk bytes must fall through to the next source.
func deriveDescription(p domain.Product) string {
	candidates := []string{}
	if p.MetaDescription != nil {
		candidates = append(candidates, *p.MetaDescription)
	}
	if p.ShortDescription != nil {
		candidates = append(candidates, *p.ShortDescription)
	}
	candidates = append(candidates, p.Name)

	for _, c := range candidates {
		clean := StripControl(StripTags(c))
		if strings.TrimSpace(clean) != "" {
			return clean
		}
	}
	return ""
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
