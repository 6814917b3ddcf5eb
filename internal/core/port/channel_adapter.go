package port

import (
	"context"
	"errors"

	"omniflow-broadcast/internal/core/domain"
)

var (
	// ErrMissingChatID is returned when a chat-style channel has no chat
	// identity for the contact.
	ErrMissingChatID = errors.New("contact has no chat id for this channel")
	// ErrMissingPhone is returned when a phone-style channel has no phone
	// number for the contact.
	ErrMissingPhone = errors.New("contact has no phone number")
)

// TemplateMessage selects a pre-approved message template instead of free
// text. Required by channels that only deliver vetted templates outside an
// active conversation window.
type TemplateMessage struct {
	Name   string   `json:"name"`
	Params []string `json:"params,omitempty"`
}

// SendRequest is the channel-agnostic payload handed to an adapter. Exactly
// one of To (phone-style) or ChatID (chat-style) is set. Media fields are
// only populated for free-text sends.
type SendRequest struct {
	ChannelID string           `json:"channelId,omitempty"`
	To        string           `json:"to,omitempty"`
	ChatID    string           `json:"chatId,omitempty"`
	Message   string           `json:"message"`
	MediaURL  string           `json:"mediaUrl,omitempty"`
	MediaType string           `json:"mediaType,omitempty"`
	Template  *TemplateMessage `json:"template,omitempty"`
}

// SendOutcome is an adapter's answer to a successful send. The provider
// message id may be empty when the channel does not assign one.
type SendOutcome struct {
	ProviderMessageID string
}

// ChannelAdapter delivers one composed message through a channel family.
// Errors are recorded on the recipient and never abort the batch.
type ChannelAdapter interface {
	Send(ctx context.Context, req SendRequest) (SendOutcome, error)
}

// AdapterRegistry resolves the adapter for a channel type. New channels are
// added by registration, without touching the dispatch loop.
type AdapterRegistry interface {
	Adapter(t domain.ChannelType) (ChannelAdapter, bool)
}
