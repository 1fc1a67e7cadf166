package main

import (
	"context"
	"crypto/rsa"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gardenlawn/shopfeed/internal/api/auth"
	"github.com/gardenlawn/shopfeed/internal/api/handlers"
	"github.com/gardenlawn/shopfeed/internal/api/middleware"
	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/config"
	"github.com/gardenlawn/shopfeed/internal/feed"
	"github.com/gardenlawn/shopfeed/internal/logging"
	"github.com/gardenlawn/shopfeed/internal/migrate"
	"github.com/gardenlawn/shopfeed/internal/schema"
	"github.com/gardenlawn/shopfeed/internal/segment"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

func main() {
	cfg := config.Load()
	logger := logging.NewStdLogger("feed-api ")

	ctx := context.Background()

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

	if cfg.RunMigrations && cat.DB != nil {
		if err := migrate.ApplyDir(ctx, cat.DB, "./migrations"); err != nil {
			logger.Printf("migrations failed: %v", err)
			os.Exit(1)
		}
		logger.Printf("migrations applied")
	}

	var segStore segment.Store
	if cat.DB != nil {
		segStore = segment.NewMySQLStore(cat.DB)
	} else {
		segStore = segment.NewMemoryStore()
	}

	store := storefront.Context{
		BaseURL:      cfg.BaseURL,
		CurrencyCode: cfg.Currency,
		DefaultBrand: cfg.DefaultBrand,
	}
	taxer := storefront.FlatRateTaxer{Rate: cfg.TaxRate}
	images := storefront.MediaURLResolver{BaseURL: cfg.BaseURL}

	generator := feed.Generator{
		Catalog:  cat.Source,
		Segments: segment.Resolver{Store: segStore},
		Store:    store,
		Tax:      taxer,
		Images:   images,
	}

	var pubKey *rsa.PublicKey
	if key, err := auth.LoadRSAPublicKeyFromEnv("JWT_PUBLIC_KEY"); err == nil {
		pubKey = key
	} else if cfg.Env != "dev" {
		logger.Printf("auth key load failed: %v", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.Handle("/feed/google.xml", handlers.FeedHandler{
		Generator: generator,
		Logger:    logger,
	})

	mux.Handle("/v1/products/", handlers.ProductSchemaHandler{
		Catalog: cat.Source,
		Builder: schema.Builder{
			Store:  store,
			Tax:    taxer,
			Images: images,
		},
	})

	mux.Handle("/v1/admin/segments:upsert", middleware.AuthMiddleware{
		Env:       cfg.Env,
		Role:      auth.RoleAdmin,
		PublicKey: pubKey,
		Next:      handlers.SegmentUpsertHandler{Segments: segStore},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Printf("starting (env=%s backend=%s) on %s", cfg.Env, cfg.CatalogBackend, server.Addr)

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Printf("server error: %v", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(logger, server)
}

func waitForShutdown(logger interface{ Printf(string, ...any) }, server *http.Server) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Printf("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = server.Shutdown(ctx)
	logger.Printf("shutdown complete")
}
