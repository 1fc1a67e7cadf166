package feed

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/domain"
	"github.com/gardenlawn/shopfeed/internal/segment"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

type failingSource struct{}

func (failingSource) ListFeedEligibleProducts(ctx context.Context) ([]domain.Product, error) {
	return nil, errors.New("db is down")
}

func (failingSource) GetProduct(ctx context.Context, sku string) (domain.Product, bool, error) {
	return domain.Product{}, false, errors.New("db is down")
}

type failingSegments struct{}

func (failingSegments) GetSegment(ctx context.Context, productID uint64) (string, bool, error) {
	return "", false, errors.New("segment table missing")
}

func (failingSegments) UpsertSegment(ctx context.Context, productID uint64, label string) error {
	return errors.New("segment table missing")
}

func scenarioGenerator(t *testing.T) Generator {
	t.Helper()

	ctx := context.Background()
	cat := catalog.NewMemoryStore()

	// Product A: high margin, GTIN, STAR segment.
	if err := cat.UpsertProduct(ctx, domain.Product{
		ID: 1, SKU: "A1", Name: "Product A",
		FinalPrice: 100, Cost: floatPtr(50),
		GTIN:   strPtr("123"),
		URLKey: "product-a",
		Status: domain.StatusEnabled, Visibility: domain.VisibilityBoth, InStock: true,
	}); err != nil {
		t.Fatalf("seed A: %v", err)
	}

	// Product B: low margin, no GTIN, no segment.
	if err := cat.UpsertProduct(ctx, domain.Product{
		ID: 2, SKU: "B1", Name: "Product B",
		FinalPrice: 80, Cost: floatPtr(70),
		URLKey: "product-b",
		Status: domain.StatusEnabled, Visibility: domain.VisibilityBoth, InStock: true,
	}); err != nil {
		t.Fatalf("seed B: %v", err)
	}

	segs := segment.NewMemoryStore()
	if err := segs.UpsertSegment(ctx, 1, "STAR"); err != nil {
		t.Fatalf("seed segment: %v", err)
	}

	store := storefront.Context{
		BaseURL:      "https://shop.example/",
		CurrencyCode: "USD",
		DefaultBrand: "Garden Lawn",
	}

	return Generator{
		Catalog:  cat,
		Segments: segment.Resolver{Store: segs},
		Store:    store,
		Tax:      storefront.FlatRateTaxer{Rate: 0},
		Images:   storefront.MediaURLResolver{BaseURL: store.BaseURL},
	}
}

func TestGenerate_TwoProductScenario(t *testing.T) {
	gen := scenarioGenerator(t)

	doc, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}

	body, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode err: %v", err)
	}

	got := parseDocument(t, body)
	if len(got.Channel.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(got.Channel.Items))
	}

	a, b := got.Channel.Items[0], got.Channel.Items[1]

	if a.ID != "A1" || b.ID != "B1" {
		t.Fatalf("item order wrong: %q then %q", a.ID, b.ID)
	}

	if a.GTIN == nil || *a.GTIN != "123" {
		t.Fatalf("product A gtin: %+v", a.GTIN)
	}
	if a.CustomLabel0 == nil || *a.CustomLabel0 != "STAR" {
		t.Fatalf("product A custom_label_0: %+v", a.CustomLabel0)
	}
	if a.CustomLabel1 != MarginHigh {
		t.Fatalf("product A custom_label_1 = %q", a.CustomLabel1)
	}
	if a.Price != "100.00 USD" {
		t.Fatalf("product A price = %q", a.Price)
	}

	if b.GTIN != nil {
		t.Fatalf("product B must have no gtin, got %q", *b.GTIN)
	}
	if b.CustomLabel0 != nil {
		t.Fatalf("product B must have no custom_label_0, got %q", *b.CustomLabel0)
	}
	if b.CustomLabel1 != MarginLow {
		t.Fatalf("product B custom_label_1 = %q", b.CustomLabel1)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	gen := scenarioGenerator(t)
	ctx := context.Background()

	first, err := gen.Generate(ctx)
	if err != nil {
		t.Fatalf("first Generate err: %v", err)
	}
	second, err := gen.Generate(ctx)
	if err != nil {
		t.Fatalf("second Generate err: %v", err)
	}

	b1, err := first.Encode()
	if err != nil {
		t.Fatalf("first Encode err: %v", err)
	}
	b2, err := second.Encode()
	if err != nil {
		t.Fatalf("second Encode err: %v", err)
	}

	if !bytes.Equal(b1, b2) {
		t.Fatalf("unchanged catalog must encode identically:\n%s\n---\n%s", b1, b2)
	}
}

func TestGenerate_CatalogFailureIsFatal(t *testing.T) {
	gen := scenarioGenerator(t)
	gen.Catalog = failingSource{}

	if _, err := gen.Generate(context.Background()); err == nil {
		t.Fatalf("expected error when catalog is unavailable")
	}
}

func TestGenerate_SegmentFailureIsIsolated(t *testing.T) {
	gen := scenarioGenerator(t)
	gen.Segments = segment.Resolver{Store: failingSegments{}}

	doc, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("segment store failure must not fail the feed: %v", err)
	}
	for _, it := range doc.Items {
		if it.CustomLabel0 != "" {
			t.Fatalf("custom_label_0 should be absent when lookups fail, got %q", it.CustomLabel0)
		}
	}
	if len(doc.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(doc.Items))
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	gen := scenarioGenerator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gen.Generate(ctx); err == nil {
		t.Fatalf("canceled request must not yield a document")
	}
}
