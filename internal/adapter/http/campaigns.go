package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"omniflow-broadcast/internal/core/domain"
)

type createCampaignRequest struct {
	TenantID       string   `json:"tenantId"`
	Name           string   `json:"name"`
	Message        string   `json:"message"`
	MediaURL       string   `json:"mediaUrl,omitempty"`
	MediaType      string   `json:"mediaType,omitempty"`
	ChannelID      string   `json:"channelId,omitempty"`
	ChannelType    string   `json:"channelType"`
	TemplateName   string   `json:"templateName,omitempty"`
	TemplateParams []string `json:"templateParams,omitempty"`
	AudienceTags   []string `json:"audienceTags,omitempty"`
	Scheduled      bool     `json:"scheduled,omitempty"`
}

type campaignResponse struct {
	ID            string     `json:"id"`
	TenantID      string     `json:"tenantId"`
	Name          string     `json:"name"`
	Message       string     `json:"message"`
	ChannelType   string     `json:"channelType"`
	Status        string     `json:"status"`
	TotalContacts int        `json:"totalContacts"`
	SentCount     int        `json:"sentCount"`
	FailedCount   int        `json:"failedCount"`
	StartedAt     *time.Time `json:"startedAt"`
	CompletedAt   *time.Time `json:"completedAt"`
	AudienceTags  []string   `json:"audienceTags,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		TenantID:      c.TenantID,
		Name:          c.Name,
		Message:       c.Message,
		ChannelType:   string(c.ChannelType),
		Status:        string(c.Status),
		TotalContacts: c.TotalContacts,
		SentCount:     c.SentCount,
		FailedCount:   c.FailedCount,
		StartedAt:     c.StartedAt,
		CompletedAt:   c.CompletedAt,
		AudienceTags:  c.AudienceTags,
	}
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if req.TenantID == "" || req.Name == "" || req.Message == "" || req.ChannelType == "" {
		h.badRequest(w, "tenantId, name, message and channelType are required")
		return
	}

	status := domain.CampaignDraft
	if req.Scheduled {
		status = domain.CampaignScheduled
	}
	c := &domain.Campaign{
		TenantID:       req.TenantID,
		Name:           req.Name,
		Message:        req.Message,
		MediaURL:       req.MediaURL,
		MediaType:      req.MediaType,
		ChannelID:      req.ChannelID,
		ChannelType:    domain.ChannelType(req.ChannelType),
		TemplateName:   req.TemplateName,
		TemplateParams: req.TemplateParams,
		AudienceTags:   req.AudienceTags,
		Status:         status,
	}
	if err := h.svc.CreateCampaign(r.Context(), c); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaigns, err := h.svc.ListCampaigns(r.Context(), q.Get("tenant_id"), domain.CampaignStatus(q.Get("status")))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignResponse, len(campaigns))
	for i := range campaigns {
		out[i] = toCampaignResponse(&campaigns[i])
	}
	h.writeJSON(w, http.StatusOK, out)
}
