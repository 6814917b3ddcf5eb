package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"omniflow-broadcast/internal/core/port"
)

type receiptRequest struct {
	ProviderMessageID string     `json:"providerMessageId"`
	Kind              string     `json:"kind"` // delivered | read
	Timestamp         *time.Time `json:"timestamp,omitempty"`
}

// handleReceipt accepts delivery/read callbacks relayed by channel
// gateways and stamps the matching recipient.
func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if req.ProviderMessageID == "" {
		h.badRequest(w, "providerMessageId is required")
		return
	}
	kind := port.ReceiptKind(req.Kind)
	if kind != port.ReceiptDelivered && kind != port.ReceiptRead {
		h.badRequest(w, "kind must be delivered or read")
		return
	}
	at := time.Now()
	if req.Timestamp != nil {
		at = *req.Timestamp
	}
	if err := h.svc.RecordReceipt(r.Context(), req.ProviderMessageID, kind, at); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
