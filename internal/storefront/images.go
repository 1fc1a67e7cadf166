package storefront

import (
	"strings"

	"github.com/gardenlawn/shopfeed/internal/domain"
)

// Image roles understood by the resolver. Only the base role is used by
// the feed; the schema endpoint asks for the page-medium role.
const (
	ImageRoleBase       = "product_base_image"
	ImageRolePageMedium = "product_page_image_medium"
)

// ImageResolver turns a product image attribute into an absolute URL.
type ImageResolver interface {
	ResolveImageURL(p domain.Product, role string) string
}

// MediaURLResolver builds URLs under the store's media path. A product
// with no image attribute resolves to the placeholder, never to an empty
// string, so the required image_link field always has a value.
type MediaURLResolver struct {
	BaseURL string
}

func (r MediaURLResolver) ResolveImageURL(p domain.Product, role string) string {
	_ = role // single media tree, role picks no variant yet

	base := strings.TrimRight(r.BaseURL, "/") + "/media/catalog/product"

	if p.Image == nil || strings.TrimSpace(*p.Image) == "" {
		return base + "/placeholder/default.jpg"
	}

	path := *p.Image
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
