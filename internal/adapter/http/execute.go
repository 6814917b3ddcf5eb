package httpadapter

import (
	"encoding/json"
	"net/http"

	"omniflow-broadcast/internal/core/port"
)

type executeRequest struct {
	CampaignID string `json:"campaignId"`
	Action     string `json:"action"`
	BatchSize  int    `json:"batchSize,omitempty"`
	DelayMs    *int   `json:"delayMs,omitempty"`
}

// handleExecute is the single entry point of the broadcast engine. The
// action field selects the state-machine operation; each action has its
// own response shape.
func (h *Handler) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if req.CampaignID == "" {
		h.badRequest(w, "campaignId is required")
		return
	}

	ctx := r.Context()
	switch req.Action {
	case "start":
		total, err := h.svc.Start(ctx, req.CampaignID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "total": total})

	case "send":
		res, err := h.svc.Send(ctx, req.CampaignID, port.SendOptions{
			BatchSize: req.BatchSize,
			DelayMs:   req.DelayMs,
		})
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"sent":      res.Sent,
			"failed":    res.Failed,
			"remaining": res.Remaining,
			"completed": res.Completed,
		})

	case "pause":
		if err := h.svc.Pause(ctx, req.CampaignID); err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "paused"})

	case "resume":
		if err := h.svc.Resume(ctx, req.CampaignID); err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": "running"})

	case "retry_failed":
		retried, err := h.svc.RetryFailed(ctx, req.CampaignID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "retried": retried})

	case "stats":
		stats, err := h.svc.Stats(ctx, req.CampaignID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})

	default:
		h.badRequest(w, "unknown action")
	}
}
