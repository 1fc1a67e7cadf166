package feed

import (
	"context"
	"fmt"

	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/segment"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

// Channel metadata. Store link varies, titles do not.
const (
	ChannelTitle       = "Product Feed"
	ChannelDescription = "Product feed for Google Merchant Center"
)

// Generator assembles the channel document from the catalog, the store
// context and the segment resolver. A catalog read failure is fatal for
// the whole request; a per-product defect or segment miss never is.
type Generator struct {
	Catalog  catalog.Source
	Segments segment.Resolver

	Store  storefront.Context
	Tax    storefront.TaxPricer
	Images storefront.ImageResolver
}

func (g Generator) Generate(ctx context.Context) (*Document, error) {
	if g.Catalog == nil {
		return nil, fmt.Errorf("feed generator: catalog source is nil")
	}

	products, err := g.Catalog.ListFeedEligibleProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feed products: %w", err)
	}

	doc := &Document{
		Title:       ChannelTitle,
		Link:        g.Store.BaseURL,
		Description: ChannelDescription,
		Items:       make([]Item, 0, len(products)),
	}

	deps := DeriveDeps{
		Store:  g.Store,
		Tax:    g.Tax,
		Images: g.Images,
	}

	for _, p := range products {
		item := DeriveItem(p, deps)

		if label, ok := g.Segments.Lookup(ctx, p.ID); ok {
			item.CustomLabel0 = label
		}

		doc.Items = append(doc.Items, item)
	}

	// All-or-nothing: a canceled request must not produce a document
	// assembled from a partial catalog scan.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}
