package channel

import (
	"context"
	"net/http"
	"time"

	"omniflow-broadcast/internal/core/port"
)

// ChatAdapter delivers to chat-style channels (telegram family) where the
// recipient is addressed by a channel-assigned chat id.
type ChatAdapter struct {
	url    string
	client *http.Client
}

var _ port.ChannelAdapter = (*ChatAdapter)(nil)

func NewChatAdapter(url string, timeout time.Duration) *ChatAdapter {
	return &ChatAdapter{url: url, client: newClient(timeout)}
}

type chatPayload struct {
	ChannelID string                `json:"channelId,omitempty"`
	ChatID    string                `json:"chatId"`
	Message   string                `json:"message"`
	MediaURL  string                `json:"mediaUrl,omitempty"`
	MediaType string                `json:"mediaType,omitempty"`
	Template  *port.TemplateMessage `json:"template,omitempty"`
}

func (a *ChatAdapter) Send(ctx context.Context, req port.SendRequest) (port.SendOutcome, error) {
	if req.ChatID == "" {
		return port.SendOutcome{}, port.ErrMissingChatID
	}
	return postSend(ctx, a.client, a.url, chatPayload{
		ChannelID: req.ChannelID,
		ChatID:    req.ChatID,
		Message:   req.Message,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Template:  req.Template,
	})
}
