package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gardenlawn/shopfeed/internal/segment"
)

type segmentUpsertRequest struct {
	ProductID    uint64 `json:"product_id"`
	SegmentLabel string `json:"segment_label"`
}

// SegmentUpsertHandler stores a precomputed performance segment for one
// product. Sits behind the admin auth middleware.
type SegmentUpsertHandler struct {
	Segments segment.Store
}

func (h SegmentUpsertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.Segments == nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "misconfigured",
			"message": "handler dependencies not configured",
		})
		return
	}

	var req segmentUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "invalid_json",
			"message": err.Error(),
		})
		return
	}

	if req.ProductID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "invalid_request",
			"message": "product_id is required",
		})
		return
	}
	req.SegmentLabel = strings.TrimSpace(req.SegmentLabel)
	if req.SegmentLabel == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "invalid_request",
			"message": "segment_label is required",
		})
		return
	}

	if err := h.Segments.UpsertSegment(r.Context(), req.ProductID, req.SegmentLabel); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "upsert_failed",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"product_id":    req.ProductID,
		"segment_label": req.SegmentLabel,
	})
}
