package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/domain"
	"github.com/gardenlawn/shopfeed/internal/schema"
	"github.com/gardenlawn/shopfeed/internal/storefront"
)

func testSchemaHandler(t *testing.T) ProductSchemaHandler {
	t.Helper()

	cat := catalog.NewMemoryStore()
	if err := cat.UpsertProduct(context.Background(), domain.Product{
		ID: 1, SKU: "A1", Name: "Product A",
		FinalPrice: 100, URLKey: "product-a",
		Status: domain.StatusEnabled, Visibility: domain.VisibilityBoth, InStock: true,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := storefront.Context{BaseURL: "https://shop.example/", CurrencyCode: "PLN"}
	return ProductSchemaHandler{
		Catalog: cat,
		Builder: schema.Builder{
			Store:  store,
			Tax:    storefront.FlatRateTaxer{Rate: 0},
			Images: storefront.MediaURLResolver{BaseURL: store.BaseURL},
		},
	}
}

func TestProductSchemaHandler_OK(t *testing.T) {
	h := testSchemaHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/A1/schema", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/ld+json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got["sku"] != "A1" || got["@type"] != "Product" {
		t.Fatalf("unexpected schema: %v", got)
	}
}

func TestProductSchemaHandler_NotFound(t *testing.T) {
	h := testSchemaHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/missing/schema", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestProductSchemaHandler_InvalidPath(t *testing.T) {
	h := testSchemaHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/A1/other", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
