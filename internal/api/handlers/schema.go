package handlers

import (
	"net/http"
	"strings"

	"github.com/gardenlawn/shopfeed/internal/catalog"
	"github.com/gardenlawn/shopfeed/internal/schema"
)

// ProductSchemaHandler serves schema.org Product JSON-LD for one SKU.
type ProductSchemaHandler struct {
	Catalog catalog.Source
	Builder schema.Builder
}

func (h ProductSchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.Catalog == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "misconfigured",
			"message": "handler dependencies not configured",
		})
		return
	}

	// Expect: /v1/products/{sku}/schema
	path := strings.TrimPrefix(r.URL.Path, "/v1/products/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[1] != "schema" || parts[0] == "" {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "message": "invalid path"})
		return
	}
	sku := parts[0]

	p, ok, err := h.Catalog.GetProduct(r.Context(), sku)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "get_product_failed",
			"message": err.Error(),
		})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":   "not_found",
			"message": "product not found",
		})
		return
	}

	body, err := h.Builder.Build(p)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "schema_build_failed",
			"message": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/ld+json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
