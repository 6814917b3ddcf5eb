package port

import (
	"context"
	"time"

	"omniflow-broadcast/internal/core/domain"
)

// SendOptions bounds one dispatch batch. A zero BatchSize falls back to the
// engine default; a nil DelayMs falls back to the default inter-send delay,
// while an explicit zero disables pacing.
type SendOptions struct {
	BatchSize int
	DelayMs   *int
}

// SendResult reports the outcome of one dispatch batch. Remaining counts
// recipients still pending (or claimed elsewhere) after the batch;
// Completed is true once none remain.
type SendResult struct {
	Sent      int  `json:"sent"`
	Failed    int  `json:"failed"`
	Remaining int  `json:"remaining"`
	Completed bool `json:"completed"`
}

// ReceiptKind discriminates delivery callbacks relayed by channel webhooks.
type ReceiptKind string

const (
	ReceiptDelivered ReceiptKind = "delivered"
	ReceiptRead      ReceiptKind = "read"
)

// BroadcastUseCase is the inbound port of the broadcast engine. Each method
// is one stateless invocation of the campaign state machine; all state
// lives in the repository, so any call is safe to retry at the call level.
type BroadcastUseCase interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, tenantID string, status domain.CampaignStatus) ([]domain.Campaign, error)

	// Start resolves the audience into pending recipients and moves the
	// campaign to running. Returns the resolved recipient count.
	Start(ctx context.Context, campaignID string) (int, error)
	// Send dispatches one bounded batch and returns its outcome. Callers
	// invoke it repeatedly until Completed is true.
	Send(ctx context.Context, campaignID string, opts SendOptions) (*SendResult, error)
	Pause(ctx context.Context, campaignID string) error
	Resume(ctx context.Context, campaignID string) error
	// RetryFailed resets failed recipients to pending and reopens a
	// completed campaign. Returns the number of recipients retried.
	RetryFailed(ctx context.Context, campaignID string) (int, error)
	Stats(ctx context.Context, campaignID string) (*domain.CampaignStats, error)

	// RecordReceipt stamps a delivered/read timestamp by provider message
	// id. Invoked by channel webhook callbacks, never by the engine.
	RecordReceipt(ctx context.Context, providerMessageID string, kind ReceiptKind, at time.Time) error
}
