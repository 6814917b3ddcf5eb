package httpadapter

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"omniflow-broadcast/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it decodes requests, invokes the broadcast usecase and maps domain errors
// onto status codes. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.BroadcastUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.BroadcastUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/broadcasts/execute", h.handleExecute)
		r.Post("/broadcasts", h.handleCreateCampaign)
		r.Get("/broadcasts", h.handleListCampaigns)
		r.Get("/broadcasts/{id}", h.handleGetCampaign)
		r.Get("/broadcasts/{id}/stats", h.handleStats)
		r.Post("/receipts", h.handleReceipt)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
