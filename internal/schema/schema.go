// Package schema renders schema.org Product JSON-LD for product pages.
package schema

import (
	"encoding/json"
	"strings"

	"github.com/gardenlawn/shopfeed/internal/domain"
	"github.com/gardenlawn/shopfeed/internal/feed"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

const (
	availabilityInStock    = "https://schema.org/InStock"
	availabilityOutOfStock = "https://schema.org/OutOfStock"
)

type offerNode struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	URL           string `json:"url"`
}

type brandNode struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type productNode struct {
	Context     string     `json:"@context"`
	Type        string     `json:"@type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	SKU         string     `json:"sku"`
	Image       string     `json:"image"`
	Offers      offerNode  `json:"offers"`
	Brand       *brandNode `json:"brand,omitempty"`
}

type Builder struct {
	Store  storefront.Context
	Tax    storefront.TaxPricer
	Images storefront.ImageResolver
}

// Build serializes the structured-data block for one product. Unlike the
// channel feed, availability here reflects the true stock state: the
// schema is rendered on product pages, which exist for out-of-stock
// products too.
func (b Builder) Build(p domain.Product) ([]byte, error) {
	gross := p.FinalPrice
	if b.Tax != nil {
		gross = b.Tax.TaxPrice(p, p.FinalPrice)
	}

	availability := availabilityOutOfStock
	if p.InStock {
		availability = availabilityInStock
	}

	image := ""
	if b.Images != nil {
		image = b.Images.ResolveImageURL(p, storefront.ImageRolePageMedium)
	}

	node := productNode{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        p.Name,
		Description: describe(p),
		SKU:         p.SKU,
		Image:       image,
		Offers: offerNode{
			Type:          "Offer",
			Price:         feed.FormatAmount(gross),
			PriceCurrency: b.Store.CurrencyCode,
			Availability:  availability,
			URL:           b.Store.ProductURL(p),
		},
	}

	if p.Manufacturer != nil && strings.TrimSpace(*p.Manufacturer) != "" {
		node.Brand = &brandNode{Type: "Brand", Name: *p.Manufacturer}
	}

	return json.Marshal(node)
}

// describe follows the feed's fallback chain (meta -> short -> name) but
// additionally folds the result onto a single line.
func describe(p domain.Product) string {
	candidates := []string{}
	if p.MetaDescription != nil {
		candidates = append(candidates, *p.MetaDescription)
	}
	if p.ShortDescription != nil {
		candidates = append(candidates, *p.ShortDescription)
	}
	candidates = append(candidates, p.Name)

	for _, c := range candidates {
		clean := feed.CollapseWhitespace(feed.StripControl(feed.StripTags(c)))
		if clean != "" {
			return clean
		}
	}
	return ""
}
