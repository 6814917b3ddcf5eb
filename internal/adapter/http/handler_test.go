package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
	"omniflow-broadcast/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockBroadcastUseCase, http.Handler) {
	svc := mocks.NewMockBroadcastUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler))
	return svc, h.Router()
}

func postExecute(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcasts/execute", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestExecute_Start(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Start(mock.Anything, "camp-1").Return(150, nil)

	rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "start"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(150), body["total"])
}

func TestExecute_Send(t *testing.T) {
	svc, router := newTestHandler(t)
	delay := 500
	svc.EXPECT().Send(mock.Anything, "camp-1", port.SendOptions{BatchSize: 25, DelayMs: &delay}).
		Return(&port.SendResult{Sent: 23, Failed: 2, Remaining: 100, Completed: false}, nil)

	rec := postExecute(t, router, map[string]any{
		"campaignId": "camp-1",
		"action":     "send",
		"batchSize":  25,
		"delayMs":    500,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(23), body["sent"])
	assert.Equal(t, float64(2), body["failed"])
	assert.Equal(t, float64(100), body["remaining"])
	assert.Equal(t, false, body["completed"])
}

func TestExecute_SendOmittedDelayIsNil(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Send(mock.Anything, "camp-1", mock.MatchedBy(func(opts port.SendOptions) bool {
		return opts.DelayMs == nil && opts.BatchSize == 0
	})).Return(&port.SendResult{Completed: true}, nil)

	rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "send"})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExecute_PauseAndResume(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Pause(mock.Anything, "camp-1").Return(nil)
	svc.EXPECT().Resume(mock.Anything, "camp-1").Return(nil)

	rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "pause"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paused", decodeBody(t, rec)["status"])

	rec = postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "resume"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "running", decodeBody(t, rec)["status"])
}

func TestExecute_RetryFailed(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().RetryFailed(mock.Anything, "camp-1").Return(7, nil)

	rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "retry_failed"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["retried"])
}

func TestExecute_Stats(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Stats(mock.Anything, "camp-1").Return(&domain.CampaignStats{
		Total: 10, Pending: 1, Sent: 7, Delivered: 6, Read: 4, Failed: 2,
	}, nil)

	rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "stats"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(10), stats["total"])
	assert.Equal(t, float64(7), stats["sent"])
	assert.Equal(t, float64(4), stats["read"])
}

func TestExecute_BadRequests(t *testing.T) {
	_, router := newTestHandler(t)

	rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "explode"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postExecute(t, router, map[string]string{"action": "start"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcasts/execute", strings.NewReader("{not json"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExecute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", port.ErrCampaignNotFound, http.StatusNotFound},
		{"invalid state", port.ErrInvalidState, http.StatusConflict},
		{"empty audience", port.ErrEmptyAudience, http.StatusUnprocessableEntity},
		{"internal", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newTestHandler(t)
			svc.EXPECT().Start(mock.Anything, "camp-1").Return(0, tt.err)

			rec := postExecute(t, router, map[string]string{"campaignId": "camp-1", "action": "start"})
			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Equal(t, "internal error", body["error"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool {
		return c.TenantID == "tenant-1" &&
			c.ChannelType == domain.ChannelWhatsApp &&
			c.Status == domain.CampaignDraft
	})).Return(nil)

	raw, _ := json.Marshal(map[string]any{
		"tenantId":     "tenant-1",
		"name":         "Promo setembro",
		"message":      "Olá {{nome}}",
		"channelType":  "whatsapp",
		"audienceTags": []string{"vip"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcasts", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Promo setembro", got.Name)
	assert.Equal(t, "whatsapp", got.ChannelType)
}

func TestCreateCampaign_MissingFields(t *testing.T) {
	svc, router := newTestHandler(t)

	raw, _ := json.Marshal(map[string]string{"tenantId": "tenant-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcasts", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestGetCampaign(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(&domain.Campaign{
		ID:          "camp-1",
		TenantID:    "tenant-1",
		Name:        "Promo",
		Status:      domain.CampaignRunning,
		ChannelType: domain.ChannelWABA,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/camp-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "camp-1", got.ID)
	assert.Equal(t, "running", got.Status)
	assert.Nil(t, got.StartedAt)
}

func TestListCampaigns_ForwardsFilters(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().ListCampaigns(mock.Anything, "tenant-1", domain.CampaignRunning).
		Return([]domain.Campaign{{ID: "camp-1"}, {ID: "camp-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts?tenant_id=tenant-1&status=running", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestStatsEndpoint(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().Stats(mock.Anything, "camp-1").Return(&domain.CampaignStats{Total: 3, Sent: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/camp-1/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestReceipt(t *testing.T) {
	svc, router := newTestHandler(t)
	svc.EXPECT().RecordReceipt(mock.Anything, "wamid.1", port.ReceiptDelivered, mock.Anything).Return(nil)

	raw, _ := json.Marshal(map[string]string{"providerMessageId": "wamid.1", "kind": "delivered"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReceipt_RejectsUnknownKind(t *testing.T) {
	svc, router := newTestHandler(t)

	raw, _ := json.Marshal(map[string]string{"providerMessageId": "wamid.1", "kind": "seen"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "RecordReceipt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
