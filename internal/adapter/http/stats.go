package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleStats serves the same payload as the stats action of the execute
// endpoint, for callers that prefer a plain GET for polling.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}
