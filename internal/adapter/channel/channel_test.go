package channel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
)

func TestPhoneAdapter_Send(t *testing.T) {
	var got phonePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"messageId": "wamid.123"})
	}))
	defer server.Close()

	adapter := NewPhoneAdapter(server.URL, time.Second)
	outcome, err := adapter.Send(context.Background(), port.SendRequest{
		ChannelID: "ch-1",
		To:        "5511999990000",
		Message:   "Olá Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "wamid.123", outcome.ProviderMessageID)
	assert.Equal(t, "5511999990000", got.To)
	assert.Equal(t, "Olá Ana", got.Message)
	assert.Equal(t, "ch-1", got.ChannelID)
}

func TestPhoneAdapter_SendTemplate(t *testing.T) {
	var got phonePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"messageId": "wamid.456"})
	}))
	defer server.Close()

	adapter := NewPhoneAdapter(server.URL, time.Second)
	_, err := adapter.Send(context.Background(), port.SendRequest{
		To:       "5511999990000",
		Template: &port.TemplateMessage{Name: "welcome_v2", Params: []string{"10%"}},
	})
	require.NoError(t, err)
	require.NotNil(t, got.Template)
	assert.Equal(t, "welcome_v2", got.Template.Name)
	assert.Equal(t, []string{"10%"}, got.Template.Params)
}

func TestPhoneAdapter_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "provider unavailable"})
	}))
	defer server.Close()

	adapter := NewPhoneAdapter(server.URL, time.Second)
	_, err := adapter.Send(context.Background(), port.SendRequest{To: "5511999990000", Message: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "provider unavailable")
}

func TestPhoneAdapter_MissingPhone(t *testing.T) {
	adapter := NewPhoneAdapter("http://unused", time.Second)
	_, err := adapter.Send(context.Background(), port.SendRequest{Message: "x"})
	assert.ErrorIs(t, err, port.ErrMissingPhone)
}

func TestChatAdapter_Send(t *testing.T) {
	var got chatPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"messageId": "tg-789"})
	}))
	defer server.Close()

	adapter := NewChatAdapter(server.URL, time.Second)
	outcome, err := adapter.Send(context.Background(), port.SendRequest{
		ChatID:    "555001",
		Message:   "Olá",
		MediaURL:  "https://cdn.example.com/a.png",
		MediaType: "image",
	})
	require.NoError(t, err)
	assert.Equal(t, "tg-789", outcome.ProviderMessageID)
	assert.Equal(t, "555001", got.ChatID)
	assert.Equal(t, "https://cdn.example.com/a.png", got.MediaURL)
	assert.Equal(t, "image", got.MediaType)
}

func TestChatAdapter_MissingChatID(t *testing.T) {
	adapter := NewChatAdapter("http://unused", time.Second)
	_, err := adapter.Send(context.Background(), port.SendRequest{Message: "x"})
	assert.ErrorIs(t, err, port.ErrMissingChatID)
}

func TestChatAdapter_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timeout", http.StatusGatewayTimeout)
	}))
	defer server.Close()

	adapter := NewChatAdapter(server.URL, time.Second)
	_, err := adapter.Send(context.Background(), port.SendRequest{ChatID: "555001", Message: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "504")
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	phone := NewPhoneAdapter("http://unused", time.Second)
	reg.Register(domain.ChannelWhatsApp, phone)
	reg.Register(domain.ChannelSMS, phone)

	got, ok := reg.Adapter(domain.ChannelWhatsApp)
	require.True(t, ok)
	assert.Same(t, phone, got)

	_, ok = reg.Adapter(domain.ChannelTelegram)
	assert.False(t, ok)
}
