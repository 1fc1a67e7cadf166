package catalog

import (
	"context"

	"github.com/gardenlawn/shopfeed/internal/domain"
)

// Source supplies catalog records to the feed, schema and sitemap
// pipelines. ListFeedEligibleProducts returns only enabled, visible
// products with a positive final price, in entity-id order.
type Source interface {
	ListFeedEligibleProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, sku string) (domain.Product, bool, error)
}
