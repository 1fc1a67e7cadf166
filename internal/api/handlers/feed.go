package handlers

import (
	"log"
	"net/http"

	"github.com/gardenlawn/shopfeed/internal/feed"
)

// FeedHandler serves the Google Merchant Center channel feed.
//
// The document is generated and serialized fully in memory before the
// first response byte is written: either the complete well-formed XML
// goes out with a 200, or a JSON error does with a 5xx. A truncated feed
// is worse than a failed request, Merchant Center rejects the whole file
// either way.
type FeedHandler struct {
	Generator feed.Generator
	Logger    *log.Logger
}

func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	doc, err := h.Generator.Generate(r.Context())
	if err != nil {
		h.logf("feed generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "feed_generation_failed",
			"message": "catalog unavailable",
		})
		return
	}

	body, err := doc.Encode()
	if err != nil {
		h.logf("feed serialization failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "feed_serialization_failed",
			"message": "could not serialize feed document",
		})
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h FeedHandler) logf(format string, args ...any) {
	if h.Logger != nil {
		h.Logger.Printf(format, args...)
	}
}
