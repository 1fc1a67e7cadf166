package storefront

import (
	"strings"

	"github.com/gardenlawn/shopfeed/internal/domain"
)

// Context carries the store-level values consumed by the feed and schema
// builders. It is computed once from config, not per product.
type Context struct {
	BaseURL      string
	CurrencyCode string
	DefaultBrand string
}

// ProductURL joins the store base URL and the product url key.
func (c Context) ProductURL(p domain.Product) string {
	base := strings.TrimRight(c.BaseURL, "/")
	key := strings.TrimLeft(p.URLKey, "/")
	if key == "" {
		key = p.SKU
	}
	return base + "/" + key
}
