package main

import (
	"context"
	"os"
	"time"

	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/config"
	"github.com/gardenlawn/shopfeed/internal/logging"
	"github.com/gardenlawn/shopfeed/internal/sitemap"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

// One-shot sitemap generation. The storage backend is chosen here, at
// construction, and handed to the generator; nothing reaches into the
// generator afterwards to redirect its output.
func main() {
	cfg := config.Load()
	logger := logging.NewStdLogger("sitemap ")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cat, err := catalog.NewSource(ctx, catalog.FactoryConfig{
		Backend:  cfg.CatalogBackend,
		MySQLDSN: cfg.MySQLDSN,
	})
	if err != nil {
		logger.Printf("catalog init failed: %v", err)
		os.Exit(1)
	}
	if cat.DB != nil {
		defer func() { _ = cat.DB.Close() }()
	}

	gen := sitemap.Generator{
		Catalog: cat.Source,
		Store: storefront.Context{
			BaseURL:      cfg.BaseURL,
			CurrencyCode: cfg.Currency,
			DefaultBrand: cfg.DefaultBrand,
		},
		Storage: sitemap.LocalStorage{Dir: cfg.SitemapDir},
	}

	res, err := gen.Generate(ctx)
	if err != nil {
		logger.Printf("sitemap generation failed: %v", err)
		os.Exit(1)
	}

	logger.Printf("sitemap written (run=%s urls=%d path=%s)", res.RunID, res.URLs, res.Path)
}
