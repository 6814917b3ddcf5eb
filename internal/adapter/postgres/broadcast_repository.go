package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
)

// BroadcastRepository implements port.BroadcastRepository using pgxpool.
type BroadcastRepository struct {
	pool *pgxpool.Pool
}

// NewBroadcastRepository returns a new repository instance.
func NewBroadcastRepository(pool *pgxpool.Pool) *BroadcastRepository {
	return &BroadcastRepository{pool: pool}
}

var _ port.BroadcastRepository = (*BroadcastRepository)(nil)

const campaignColumns = `id, tenant_id, name, message, media_url, media_type,
	channel_id, channel_type, template_name, template_params, audience_tags,
	total_contacts, sent_count, failed_count, status, started_at, completed_at,
	created_at, updated_at`

func (r *BroadcastRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	params, err := json.Marshal(emptyIfNil(c.TemplateParams))
	if err != nil {
		return err
	}
	tags, err := json.Marshal(emptyIfNil(c.AudienceTags))
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns
			(id, tenant_id, name, message, media_url, media_type, channel_id,
			 channel_type, template_name, template_params, audience_tags, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING created_at, updated_at`,
		c.ID, c.TenantID, c.Name, c.Message, c.MediaURL, c.MediaType,
		c.ChannelID, c.ChannelType, c.TemplateName, params, tags, c.Status,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *BroadcastRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *BroadcastRepository) ListCampaigns(ctx context.Context, tenantID string, status domain.CampaignStatus) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE 1=1`
	args := []any{}
	if tenantID != "" {
		args = append(args, tenantID)
		query += fmt.Sprintf(" AND tenant_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c           domain.Campaign
		paramsRaw   []byte
		tagsRaw     []byte
		channelType string
		status      string
	)
	if err := row.Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Message, &c.MediaURL, &c.MediaType,
		&c.ChannelID, &channelType, &c.TemplateName, &paramsRaw, &tagsRaw,
		&c.TotalContacts, &c.SentCount, &c.FailedCount, &status,
		&c.StartedAt, &c.CompletedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.ChannelType = domain.ChannelType(channelType)
	c.Status = domain.CampaignStatus(status)
	if err := json.Unmarshal(paramsRaw, &c.TemplateParams); err != nil {
		return nil, fmt.Errorf("decode template_params: %w", err)
	}
	if err := json.Unmarshal(tagsRaw, &c.AudienceTags); err != nil {
		return nil, fmt.Errorf("decode audience_tags: %w", err)
	}
	return &c, nil
}

func (r *BroadcastRepository) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	return err
}

func (r *BroadcastRepository) MarkCampaignStarted(ctx context.Context, id string, totalContacts int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns
		SET status = $2, started_at = now(), total_contacts = $3, updated_at = now()
		WHERE id = $1`, id, domain.CampaignRunning, totalContacts)
	return err
}

func (r *BroadcastRepository) MarkCampaignCompleted(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns
		SET status = $2, completed_at = now(), updated_at = now()
		WHERE id = $1`, id, domain.CampaignCompleted)
	return err
}

func (r *BroadcastRepository) ReopenCampaign(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns
		SET status = $2, completed_at = NULL, updated_at = now()
		WHERE id = $1`, id, domain.CampaignRunning)
	return err
}

func (r *BroadcastRepository) ListContacts(ctx context.Context, tenantID string) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, name, phone, email, chat_id, tags
		FROM contacts
		WHERE tenant_id = $1
		ORDER BY created_at, id`, tenantID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		var (
			c       domain.Contact
			tagsRaw []byte
		)
		if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.Email, &c.ChatID, &tagsRaw); err != nil {
			return domain.Contact{}, err
		}
		if err := json.Unmarshal(tagsRaw, &c.Tags); err != nil {
			return domain.Contact{}, fmt.Errorf("decode contact tags: %w", err)
		}
		return c, nil
	})
}

func (r *BroadcastRepository) CreateRecipients(ctx context.Context, campaignID string, contactIDs []string) (int, error) {
	now := time.Now().UTC()
	inserted, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"broadcast_recipients"},
		[]string{"id", "campaign_id", "contact_id", "status", "created_at"},
		pgx.CopyFromSlice(len(contactIDs), func(i int) ([]any, error) {
			// preserve contact order through created_at plus a strictly
			// increasing tiebreak so claims keep insertion order
			return []any{
				uuid.NewString(),
				campaignID,
				contactIDs[i],
				string(domain.RecipientPending),
				now.Add(time.Duration(i) * time.Microsecond),
			}, nil
		}),
	)
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}

func (r *BroadcastRepository) ClaimPendingRecipients(ctx context.Context, campaignID string, limit int) ([]port.ClaimedRecipient, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// SKIP LOCKED makes the claim safe against overlapping send calls:
	// rows locked by another transaction are simply not visible here.
	rows, err := tx.Query(ctx, `
		SELECT r.id, r.campaign_id, r.contact_id, r.created_at,
		       c.id, c.tenant_id, c.name, c.phone, c.email, c.chat_id, c.tags
		FROM broadcast_recipients r
		LEFT JOIN contacts c ON c.id = r.contact_id
		WHERE r.campaign_id = $1 AND r.status = $2
		ORDER BY r.created_at, r.id
		LIMIT $3
		FOR UPDATE OF r SKIP LOCKED`, campaignID, domain.RecipientPending, limit)
	if err != nil {
		return nil, err
	}

	claimed, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ClaimedRecipient, error) {
		var (
			cr        port.ClaimedRecipient
			contactID *string
			tenantID  *string
			name      *string
			phone     *string
			email     *string
			chatID    *string
			tagsRaw   []byte
		)
		if err := row.Scan(
			&cr.Recipient.ID, &cr.Recipient.CampaignID, &cr.Recipient.ContactID, &cr.Recipient.CreatedAt,
			&contactID, &tenantID, &name, &phone, &email, &chatID, &tagsRaw,
		); err != nil {
			return port.ClaimedRecipient{}, err
		}
		cr.Recipient.Status = domain.RecipientProcessing
		if contactID != nil {
			contact := domain.Contact{
				ID:       *contactID,
				TenantID: deref(tenantID),
				Name:     deref(name),
				Phone:    deref(phone),
				Email:    deref(email),
				ChatID:   deref(chatID),
			}
			if len(tagsRaw) > 0 {
				if err := json.Unmarshal(tagsRaw, &contact.Tags); err != nil {
					return port.ClaimedRecipient{}, fmt.Errorf("decode contact tags: %w", err)
				}
			}
			cr.Contact = &contact
		}
		return cr, nil
	})
	if err != nil {
		return nil, err
	}
	if len(claimed) == 0 {
		return nil, tx.Commit(ctx)
	}

	ids := make([]string, len(claimed))
	for i, cr := range claimed {
		ids[i] = cr.Recipient.ID
	}
	if _, err := tx.Exec(ctx, `
		UPDATE broadcast_recipients
		SET status = $2, claimed_at = now()
		WHERE id = ANY($1)`, ids, domain.RecipientProcessing); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *BroadcastRepository) ReleaseStaleClaims(ctx context.Context, campaignID string, cutoff time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE broadcast_recipients
		SET status = $3, claimed_at = NULL
		WHERE campaign_id = $1 AND status = $2 AND claimed_at < $4`,
		campaignID, domain.RecipientProcessing, domain.RecipientPending, cutoff)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *BroadcastRepository) MarkRecipientSent(ctx context.Context, id, providerMessageID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE broadcast_recipients
		SET status = $2, sent_at = now(), provider_message_id = NULLIF($3, ''),
		    last_error = NULL, claimed_at = NULL
		WHERE id = $1`, id, domain.RecipientSent, providerMessageID)
	return err
}

func (r *BroadcastRepository) MarkRecipientFailed(ctx context.Context, id, reason string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE broadcast_recipients
		SET status = $2, last_error = $3, claimed_at = NULL
		WHERE id = $1`, id, domain.RecipientFailed, reason)
	return err
}

func (r *BroadcastRepository) ResetFailedRecipients(ctx context.Context, campaignID string) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE broadcast_recipients
		SET status = $3, last_error = NULL, provider_message_id = NULL,
		    sent_at = NULL, claimed_at = NULL
		WHERE campaign_id = $1 AND status = $2`,
		campaignID, domain.RecipientFailed, domain.RecipientPending)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

const statsSelect = `
	count(*) AS total,
	count(*) FILTER (WHERE status IN ('pending', 'processing')) AS pending,
	count(*) FILTER (WHERE status = 'sent') AS sent,
	count(*) FILTER (WHERE delivered_at IS NOT NULL) AS delivered,
	count(*) FILTER (WHERE read_at IS NOT NULL) AS read,
	count(*) FILTER (WHERE status = 'failed') AS failed`

// RefreshCampaignCounters recomputes the cached campaign counters from
// recipient rows in one statement, so they never drift under partial
// failure or retries.
func (r *BroadcastRepository) RefreshCampaignCounters(ctx context.Context, campaignID string) (*domain.CampaignStats, error) {
	var s domain.CampaignStats
	err := r.pool.QueryRow(ctx, `
		WITH counts AS (
			SELECT `+statsSelect+`
			FROM broadcast_recipients
			WHERE campaign_id = $1
		)
		UPDATE campaigns
		SET sent_count = counts.sent, failed_count = counts.failed, updated_at = now()
		FROM counts
		WHERE campaigns.id = $1
		RETURNING counts.total, counts.pending, counts.sent, counts.delivered, counts.read, counts.failed`,
		campaignID,
	).Scan(&s.Total, &s.Pending, &s.Sent, &s.Delivered, &s.Read, &s.Failed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BroadcastRepository) CampaignStats(ctx context.Context, campaignID string) (*domain.CampaignStats, error) {
	var s domain.CampaignStats
	err := r.pool.QueryRow(ctx, `
		SELECT `+statsSelect+`
		FROM broadcast_recipients
		WHERE campaign_id = $1`, campaignID,
	).Scan(&s.Total, &s.Pending, &s.Sent, &s.Delivered, &s.Read, &s.Failed)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BroadcastRepository) MarkDelivered(ctx context.Context, providerMessageID string, at time.Time) (string, error) {
	var campaignID string
	err := r.pool.QueryRow(ctx, `
		UPDATE broadcast_recipients
		SET delivered_at = $2
		WHERE provider_message_id = $1 AND delivered_at IS NULL
		RETURNING campaign_id`,
		providerMessageID, at.UTC()).Scan(&campaignID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return campaignID, nil
}

func (r *BroadcastRepository) MarkRead(ctx context.Context, providerMessageID string, at time.Time) (string, error) {
	var campaignID string
	err := r.pool.QueryRow(ctx, `
		UPDATE broadcast_recipients
		SET read_at = $2, delivered_at = COALESCE(delivered_at, $2)
		WHERE provider_message_id = $1 AND read_at IS NULL
		RETURNING campaign_id`,
		providerMessageID, at.UTC()).Scan(&campaignID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return campaignID, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
