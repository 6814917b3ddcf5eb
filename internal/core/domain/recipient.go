package domain

import "time"

// RecipientStatus is the delivery state of one (campaign, contact) pairing.
type RecipientStatus string

const (
	RecipientPending    RecipientStatus = "pending"
	RecipientProcessing RecipientStatus = "processing" // claimed by an in-flight batch
	RecipientSent       RecipientStatus = "sent"
	RecipientFailed     RecipientStatus = "failed"
)

// Recipient is the unit of delivery tracking. A recipient moves
// pending → processing → sent|failed; failed rows can be reset to pending
// by a retry. DeliveredAt and ReadAt are stamped by channel receipt
// callbacks, never by the dispatch loop.
type Recipient struct {
	ID                string
	CampaignID        string
	ContactID         string
	Status            RecipientStatus
	SentAt            *time.Time
	DeliveredAt       *time.Time
	ReadAt            *time.Time
	ProviderMessageID string
	LastError         string
	ClaimedAt         *time.Time
	CreatedAt         time.Time
}
