package domain

import "time"

// CampaignStatus is the lifecycle state of a broadcast campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignRunning   CampaignStatus = "running"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// CanStart reports whether a campaign in this status may have its audience
// resolved. Resolution happens exactly once, so only pre-start statuses
// qualify.
func (s CampaignStatus) CanStart() bool {
	return s == CampaignDraft || s == CampaignScheduled
}

// Campaign represents one broadcast job: a message template fanned out to
// every contact matched by the audience filter. SentCount and FailedCount
// are a materialized cache over recipient rows, recomputed after every
// batch rather than incremented.
type Campaign struct {
	ID             string
	TenantID       string
	Name           string
	Message        string
	MediaURL       string
	MediaType      string
	ChannelID      string
	ChannelType    ChannelType
	TemplateName   string // non-empty switches sends into pre-approved template mode
	TemplateParams []string
	AudienceTags   []string // empty means the whole tenant
	TotalContacts  int
	SentCount      int
	FailedCount    int
	Status         CampaignStatus
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CampaignStats partitions a campaign's recipients by delivery state.
// Pending includes recipients currently claimed by an in-flight batch.
// Delivered and Read count receipt timestamps stamped by channel
// callbacks; they overlap with Sent rather than partitioning it.
type CampaignStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Failed    int `json:"failed"`
}
