package channel

import (
	"context"
	"net/http"
	"time"

	"omniflow-broadcast/internal/core/port"
)

// PhoneAdapter delivers to phone-style channels (whatsapp, waba, sms)
// where the recipient is addressed by phone number.
type PhoneAdapter struct {
	url    string
	client *http.Client
}

var _ port.ChannelAdapter = (*PhoneAdapter)(nil)

func NewPhoneAdapter(url string, timeout time.Duration) *PhoneAdapter {
	return &PhoneAdapter{url: url, client: newClient(timeout)}
}

type phonePayload struct {
	ChannelID string                `json:"channelId,omitempty"`
	To        string                `json:"to"`
	Message   string                `json:"message"`
	MediaURL  string                `json:"mediaUrl,omitempty"`
	MediaType string                `json:"mediaType,omitempty"`
	Template  *port.TemplateMessage `json:"template,omitempty"`
}

func (a *PhoneAdapter) Send(ctx context.Context, req port.SendRequest) (port.SendOutcome, error) {
	if req.To == "" {
		return port.SendOutcome{}, port.ErrMissingPhone
	}
	return postSend(ctx, a.client, a.url, phonePayload{
		ChannelID: req.ChannelID,
		To:        req.To,
		Message:   req.Message,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Template:  req.Template,
	})
}
