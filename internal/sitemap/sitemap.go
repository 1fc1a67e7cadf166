// Package sitemap writes a sitemaps.org urlset for the storefront to an
// injected storage backend.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/google/uuid"

	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const FileName = "sitemap.xml"

type urlsetElement struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []urlElement `xml:"url"`
}

type urlElement struct {
	Loc string `xml:"loc"`
}

type Generator struct {
	Catalog catalog.Source
	Store   storefront.Context
	Storage Storage
}

type Result struct {
	RunID string `json:"run_id"`
	URLs  int    `json:"urls"`
	Path  string `json:"path"`
}

func (g Generator) Generate(ctx context.Context) (Result, error) {
	if g.Storage == nil {
		return Result{}, fmt.Errorf("sitemap generator: storage is nil")
	}
	if g.Catalog == nil {
		return Result{}, fmt.Errorf("sitemap generator: catalog source is nil")
	}

	products, err := g.Catalog.ListFeedEligibleProducts(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list sitemap products: %w", err)
	}

	set := urlsetElement{
		Xmlns: Namespace,
		URLs:  make([]urlElement, 0, len(products)+1),
	}
	set.URLs = append(set.URLs, urlElement{Loc: g.Store.BaseURL})
	for _, p := range products {
		set.URLs = append(set.URLs, urlElement{Loc: g.Store.ProductURL(p)})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("encode sitemap: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')

	path, err := g.Storage.Write(FileName, out)
	if err != nil {
		return Result{}, fmt.Errorf("write sitemap: %w", err)
	}

	return Result{
		RunID: uuid.NewString(),
		URLs:  len(set.URLs),
		Path:  path,
	}, nil
}
