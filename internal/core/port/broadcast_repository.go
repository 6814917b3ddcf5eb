package port

import (
	"context"
	"errors"
	"time"

	"omniflow-broadcast/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when the referenced campaign does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrInvalidState is returned when an action is not permitted in the
	// campaign's current status.
	ErrInvalidState = errors.New("invalid campaign state")
	// ErrEmptyAudience is returned by start when the audience filter matches
	// no contacts. Nothing is persisted in that case.
	ErrEmptyAudience = errors.New("audience matched no contacts")
)

// ClaimedRecipient pairs a recipient claimed for dispatch with its contact.
// Contact is nil when the contact row was deleted after the audience was
// resolved; such recipients are failed by the dispatcher, not skipped
// silently.
type ClaimedRecipient struct {
	Recipient domain.Recipient
	Contact   *domain.Contact
}

// BroadcastRepository is the persistence port for the broadcast engine. It
// is the only holder of shared mutable state; every engine invocation is
// otherwise stateless. Implementations must make ClaimPendingRecipients an
// atomic pending→processing transition so that overlapping send calls can
// never claim the same recipient.
type BroadcastRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns (nil, nil) when the campaign does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns filters by tenant and status; empty values match all.
	ListCampaigns(ctx context.Context, tenantID string, status domain.CampaignStatus) ([]domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus) error
	// MarkCampaignStarted flips the campaign to running, stamps started_at
	// and records the resolved audience size.
	MarkCampaignStarted(ctx context.Context, id string, totalContacts int) error
	MarkCampaignCompleted(ctx context.Context, id string) error
	// ReopenCampaign returns a completed campaign to running and clears
	// completed_at. Used after retrying failed recipients.
	ReopenCampaign(ctx context.Context, id string) error

	ListContacts(ctx context.Context, tenantID string) ([]domain.Contact, error)

	// CreateRecipients inserts one pending recipient per contact and
	// returns the number inserted.
	CreateRecipients(ctx context.Context, campaignID string, contactIDs []string) (int, error)
	// ClaimPendingRecipients atomically claims up to limit pending
	// recipients in insertion order, returning them joined with their
	// contacts.
	ClaimPendingRecipients(ctx context.Context, campaignID string, limit int) ([]ClaimedRecipient, error)
	// ReleaseStaleClaims returns processing recipients claimed before
	// cutoff to pending, recovering rows orphaned by a crashed batch.
	ReleaseStaleClaims(ctx context.Context, campaignID string, cutoff time.Time) (int, error)
	MarkRecipientSent(ctx context.Context, id, providerMessageID string) error
	MarkRecipientFailed(ctx context.Context, id, reason string) error
	// ResetFailedRecipients returns every failed recipient to pending,
	// clearing its error and provider id, and reports how many were reset.
	ResetFailedRecipients(ctx context.Context, campaignID string) (int, error)

	// RefreshCampaignCounters recomputes sent_count/failed_count from
	// recipient rows, persists them on the campaign and returns the fresh
	// partition.
	RefreshCampaignCounters(ctx context.Context, campaignID string) (*domain.CampaignStats, error)
	CampaignStats(ctx context.Context, campaignID string) (*domain.CampaignStats, error)

	// MarkDelivered and MarkRead stamp the recipient matching the provider
	// message id and return its campaign id, or "" when no recipient
	// matched or the timestamp was already stamped.
	MarkDelivered(ctx context.Context, providerMessageID string, at time.Time) (string, error)
	MarkRead(ctx context.Context, providerMessageID string, at time.Time) (string, error)
}
