package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"omniflow-broadcast/internal/core/port"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto status codes. Precondition violations
// keep their message; anything unexpected is logged and reported as a
// generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	msg := err.Error()
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, port.ErrEmptyAudience):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
		h.logger.Error("broadcast request failed", slog.Any("error", err))
		msg = "internal error"
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}
