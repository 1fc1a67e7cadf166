package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string `env:"ENV" default:"dev"`

	Port string `env:"PORT" default:"8080"`

	CatalogBackend string `env:"CATALOG_BACKEND" default:"memory"` // memory | mysql
	MySQLDSN       string `env:"DB_DSN" default:""`                // required when CATALOG_BACKEND=mysql

	// Store context: channel metadata, product links, prices.
	BaseURL      string  `env:"STORE_BASE_URL" default:"https://shop.gardenlawn.example/"`
	Currency     string  `env:"CURRENCY" default:"PLN"`
	DefaultBrand string  `env:"DEFAULT_BRAND" default:"Garden Lawn"`
	TaxRate      float64 `env:"TAX_RATE" default:"0.23"` // VAT applied on top of catalog final prices

	SitemapDir string `env:"SITEMAP_DIR" default:"./pub"`

	// Optional: run migrations at startup (dev convenience)
	RunMigrations bool `env:"RUN_MIGRATIONS" default:"false"`
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:            getenv("ENV", "dev"),
		Port:           getenv("PORT", "8080"),
		CatalogBackend: getenv("CATALOG_BACKEND", "memory"),
		MySQLDSN:       getenv("DB_DSN", ""),
		BaseURL:        getenv("STORE_BASE_URL", "https://shop.gardenlawn.example/"),
		Currency:       getenv("CURRENCY", "PLN"),
		DefaultBrand:   getenv("DEFAULT_BRAND", "Garden Lawn"),
		TaxRate:        getenvFloat("TAX_RATE", 0.23),
		SitemapDir:     getenv("SITEMAP_DIR", "./pub"),
		RunMigrations:  getenv("RUN_MIGRATIONS", "false") == "true",
	}
	return cfg
}

func getenv(key string, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
