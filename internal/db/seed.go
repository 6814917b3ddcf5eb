package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"omniflow-broadcast/internal/core/domain"
)

// Seed inserts a demo tenant with tagged contacts and one draft campaign,
// enough to exercise the whole engine locally.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	tenantID := uuid.NewString()

	contacts := []struct {
		name, phone, email, chatID string
		tags                       []string
	}{
		{"Ana Souza", "+5511999990001", "ana@example.com", "10001", []string{"vip", "newsletter"}},
		{"Bruno Lima", "+5511999990002", "bruno@example.com", "", []string{"newsletter"}},
		{"Carla Dias", "+5511999990003", "", "10003", []string{"vip"}},
		{"Diego Rocha", "", "diego@example.com", "10004", []string{"trial"}},
		{"Elisa Prado", "+5511999990005", "elisa@example.com", "10005", nil},
	}
	for _, c := range contacts {
		tags := c.tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO contacts (id, tenant_id, name, phone, email, chat_id, tags)
			VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			uuid.NewString(), tenantID, c.name, c.phone, c.email, c.chatID, tagsJSON); err != nil {
			return fmt.Errorf("seed contact %s: %w", c.name, err)
		}
	}

	tagsJSON, _ := json.Marshal([]string{"newsletter"})
	paramsJSON, _ := json.Marshal([]string{})
	if _, err := pool.Exec(ctx, `
		INSERT INTO campaigns
			(id, tenant_id, name, message, channel_type, template_params, audience_tags, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
		uuid.NewString(), tenantID, "Demo newsletter",
		"Olá {{nome}}, novidades para {{email}}!",
		domain.ChannelWhatsApp, paramsJSON, tagsJSON, domain.CampaignDraft); err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}
	return nil
}
