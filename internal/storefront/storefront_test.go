package storefront

import (
	"testing"

	"github.com/gardenlawn/shopfeed/internal/domain"
)

func TestProductURL(t *testing.T) {
	c := Context{BaseURL: "https://shop.example/"}

	p := domain.Product{SKU: "A1", URLKey: "lawn-mower"}
	if got := c.ProductURL(p); got != "https://shop.example/lawn-mower" {
		t.Fatalf("ProductURL = %q", got)
	}

	// Missing url key falls back to the sku so the link is never empty.
	p.URLKey = ""
	if got := c.ProductURL(p); got != "https://shop.example/A1" {
		t.Fatalf("ProductURL fallback = %q", got)
	}
}

func TestFlatRateTaxer(t *testing.T) {
	p := domain.Product{}

	if got := (FlatRateTaxer{Rate: 0.23}).TaxPrice(p, 100); got != 123 {
		t.Fatalf("TaxPrice = %v", got)
	}
	if got := (FlatRateTaxer{}).TaxPrice(p, 100); got != 100 {
		t.Fatalf("zero rate TaxPrice = %v", got)
	}
}

func TestMediaURLResolver(t *testing.T) {
	r := MediaURLResolver{BaseURL: "https://shop.example/"}

	img := "/l/m/mower.jpg"
	p := domain.Product{Image: &img}
	if got := r.ResolveImageURL(p, ImageRoleBase); got != "https://shop.example/media/catalog/product/l/m/mower.jpg" {
		t.Fatalf("ResolveImageURL = %q", got)
	}

	p.Image = nil
	if got := r.ResolveImageURL(p, ImageRoleBase); got != "https://shop.example/media/catalog/product/placeholder/default.jpg" {
		t.Fatalf("placeholder = %q", got)
	}

	noSlash := "x/y.jpg"
	p.Image = &noSlash
	if got := r.ResolveImageURL(p, ImageRoleBase); got != "https://shop.example/media/catalog/product/x/y.jpg" {
		t.Fatalf("relative path = %q", got)
	}
}
