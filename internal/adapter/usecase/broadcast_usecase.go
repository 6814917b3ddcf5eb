package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"golang.org/x/time/rate"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
)

const (
	// DefaultBatchSize is the number of recipients claimed per send call
	// when the caller does not specify one.
	DefaultBatchSize = 50
	// MaxBatchSize caps a single batch so call latency stays bounded by
	// batchSize * delay.
	MaxBatchSize = 500
	// DefaultDelay is the inter-send pacing applied when the caller does
	// not specify a delay.
	DefaultDelay = time.Second

	// maxErrorLen bounds the error text stored on a failed recipient.
	maxErrorLen = 255
	// claimStaleAfter is how long a claim may sit in processing before a
	// later send call releases it back to pending. Generous enough that a
	// slow but healthy batch never loses its claims.
	claimStaleAfter = 10 * time.Minute
)

// BroadcastEngine implements port.BroadcastUseCase. It is the campaign
// state machine: start resolves the audience, send advances one bounded
// batch, pause/resume/retry_failed steer the lifecycle and stats reports
// the recipient partition. The engine keeps no state between invocations.
type BroadcastEngine struct {
	repo     port.BroadcastRepository
	channels port.AdapterRegistry
	cache    port.StatsCache
	logger   *slog.Logger
}

var _ port.BroadcastUseCase = (*BroadcastEngine)(nil)

// NewBroadcastEngine wires the engine with its repository and channel
// registry.
func NewBroadcastEngine(repo port.BroadcastRepository, channels port.AdapterRegistry, logger *slog.Logger) *BroadcastEngine {
	return &BroadcastEngine{repo: repo, channels: channels, logger: logger}
}

// WithStatsCache attaches an optional read-through cache for Stats.
func (e *BroadcastEngine) WithStatsCache(cache port.StatsCache) *BroadcastEngine {
	e.cache = cache
	return e
}

func (e *BroadcastEngine) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Status == "" {
		c.Status = domain.CampaignDraft
	}
	if !c.Status.CanStart() {
		return fmt.Errorf("%w: campaigns are created in %q or %q", port.ErrInvalidState, domain.CampaignDraft, domain.CampaignScheduled)
	}
	return e.repo.CreateCampaign(ctx, c)
}

func (e *BroadcastEngine) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return e.getCampaign(ctx, id)
}

func (e *BroadcastEngine) ListCampaigns(ctx context.Context, tenantID string, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return e.repo.ListCampaigns(ctx, tenantID, status)
}

// Start expands the campaign's audience filter into pending recipients and
// moves the campaign to running. The draft/scheduled precondition doubles
// as the duplicate-resolution guard: a campaign is resolved exactly once.
func (e *BroadcastEngine) Start(ctx context.Context, campaignID string) (int, error) {
	c, err := e.getCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if !c.Status.CanStart() {
		return 0, fmt.Errorf("%w: cannot start campaign in status %q", port.ErrInvalidState, c.Status)
	}

	contacts, err := e.repo.ListContacts(ctx, c.TenantID)
	if err != nil {
		return 0, fmt.Errorf("list contacts: %w", err)
	}

	matched := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if contact.HasAnyTag(c.AudienceTags) {
			matched = append(matched, contact.ID)
		}
	}
	if len(matched) == 0 {
		return 0, port.ErrEmptyAudience
	}

	total, err := e.repo.CreateRecipients(ctx, c.ID, matched)
	if err != nil {
		return 0, fmt.Errorf("create recipients: %w", err)
	}
	if err := e.repo.MarkCampaignStarted(ctx, c.ID, total); err != nil {
		return 0, fmt.Errorf("mark campaign started: %w", err)
	}

	e.logger.Info("campaign started",
		slog.String("campaign_id", c.ID),
		slog.Int("recipients", total))
	return total, nil
}

// Send dispatches one bounded batch of pending recipients sequentially,
// pacing sends with a fixed-interval rate limiter. Per-recipient failures
// are recorded and never abort the batch. After the loop the campaign
// counters are recomputed from recipient rows; when none remain pending
// the campaign completes.
func (e *BroadcastEngine) Send(ctx context.Context, campaignID string, opts port.SendOptions) (*port.SendResult, error) {
	c, err := e.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CampaignRunning {
		return nil, fmt.Errorf("%w: cannot send in status %q", port.ErrInvalidState, c.Status)
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize > MaxBatchSize {
		batchSize = MaxBatchSize
	}
	delay := DefaultDelay
	if opts.DelayMs != nil {
		delay = time.Duration(max(*opts.DelayMs, 0)) * time.Millisecond
	}

	released, err := e.repo.ReleaseStaleClaims(ctx, campaignID, time.Now().Add(-claimStaleAfter))
	if err != nil {
		return nil, fmt.Errorf("release stale claims: %w", err)
	}
	if released > 0 {
		e.logger.Warn("released stale recipient claims",
			slog.String("campaign_id", campaignID),
			slog.Int("released", released))
	}

	claimed, err := e.repo.ClaimPendingRecipients(ctx, campaignID, batchSize)
	if err != nil {
		return nil, fmt.Errorf("claim pending recipients: %w", err)
	}
	if len(claimed) == 0 {
		return e.finishBatch(ctx, campaignID, 0, 0)
	}

	// rate.Every(0) yields an unlimited limiter, so delay 0 disables
	// pacing. The first Wait consumes the initial burst token and does
	// not block, which also avoids a trailing delay after the batch.
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	var sent, failed int
	for _, cr := range claimed {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("inter-send wait: %w", err)
		}

		outcome, sendErr := e.dispatch(ctx, c, cr)
		if sendErr != nil {
			failed++
			if err := e.repo.MarkRecipientFailed(ctx, cr.Recipient.ID, truncate(sendErr.Error(), maxErrorLen)); err != nil {
				return nil, fmt.Errorf("mark recipient failed: %w", err)
			}
			e.logger.Warn("recipient send failed",
				slog.String("campaign_id", campaignID),
				slog.String("recipient_id", cr.Recipient.ID),
				slog.Any("error", sendErr))
			continue
		}

		sent++
		if err := e.repo.MarkRecipientSent(ctx, cr.Recipient.ID, outcome.ProviderMessageID); err != nil {
			return nil, fmt.Errorf("mark recipient sent: %w", err)
		}
	}

	return e.finishBatch(ctx, campaignID, sent, failed)
}

// finishBatch recomputes the campaign counters and performs the completion
// transition when no recipients remain pending or claimed.
func (e *BroadcastEngine) finishBatch(ctx context.Context, campaignID string, sent, failed int) (*port.SendResult, error) {
	stats, err := e.repo.RefreshCampaignCounters(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("refresh campaign counters: %w", err)
	}
	completed := stats.Pending == 0
	if completed {
		if err := e.repo.MarkCampaignCompleted(ctx, campaignID); err != nil {
			return nil, fmt.Errorf("mark campaign completed: %w", err)
		}
		e.logger.Info("campaign completed",
			slog.String("campaign_id", campaignID),
			slog.Int("sent", stats.Sent),
			slog.Int("failed", stats.Failed))
	}
	e.invalidateStats(ctx, campaignID)

	return &port.SendResult{
		Sent:      sent,
		Failed:    failed,
		Remaining: stats.Pending,
		Completed: completed,
	}, nil
}

// dispatch personalizes and delivers one recipient's message through the
// campaign's channel adapter.
func (e *BroadcastEngine) dispatch(ctx context.Context, c *domain.Campaign, cr port.ClaimedRecipient) (port.SendOutcome, error) {
	if cr.Contact == nil {
		return port.SendOutcome{}, errors.New("contact no longer exists")
	}
	contact := *cr.Contact

	adapter, ok := e.channels.Adapter(c.ChannelType)
	if !ok {
		return port.SendOutcome{}, fmt.Errorf("no adapter registered for channel %q", c.ChannelType)
	}

	req := port.SendRequest{
		ChannelID: c.ChannelID,
		Message:   Personalize(c.Message, contact),
	}
	if c.ChannelType.ChatStyle() {
		if contact.ChatID == "" {
			return port.SendOutcome{}, port.ErrMissingChatID
		}
		req.ChatID = contact.ChatID
	} else {
		if contact.Phone == "" {
			return port.SendOutcome{}, port.ErrMissingPhone
		}
		req.To = contact.Phone
	}
	if c.TemplateName != "" {
		req.Template = &port.TemplateMessage{Name: c.TemplateName, Params: c.TemplateParams}
	} else if c.MediaURL != "" {
		req.MediaURL = c.MediaURL
		req.MediaType = c.MediaType
	}

	return adapter.Send(ctx, req)
}

// Pause blocks future send calls. An in-flight batch keeps its claims and
// finishes on its own; pause only fails the precondition of later calls.
func (e *BroadcastEngine) Pause(ctx context.Context, campaignID string) error {
	return e.transition(ctx, campaignID, domain.CampaignRunning, domain.CampaignPaused)
}

// Resume returns a paused campaign to running.
func (e *BroadcastEngine) Resume(ctx context.Context, campaignID string) error {
	return e.transition(ctx, campaignID, domain.CampaignPaused, domain.CampaignRunning)
}

func (e *BroadcastEngine) transition(ctx context.Context, campaignID string, from, to domain.CampaignStatus) error {
	c, err := e.getCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c.Status != from {
		return fmt.Errorf("%w: cannot move %q to %q", port.ErrInvalidState, c.Status, to)
	}
	if err := e.repo.UpdateCampaignStatus(ctx, campaignID, to); err != nil {
		return fmt.Errorf("update campaign status: %w", err)
	}
	e.logger.Info("campaign status changed",
		slog.String("campaign_id", campaignID),
		slog.String("status", string(to)))
	return nil
}

// RetryFailed resets every failed recipient to pending and, when the
// campaign had already completed, reopens it to running. Valid in any
// status.
func (e *BroadcastEngine) RetryFailed(ctx context.Context, campaignID string) (int, error) {
	c, err := e.getCampaign(ctx, campaignID)
	if err != nil {
		return 0, err
	}

	retried, err := e.repo.ResetFailedRecipients(ctx, campaignID)
	if err != nil {
		return 0, fmt.Errorf("reset failed recipients: %w", err)
	}
	if retried == 0 {
		return 0, nil
	}

	if _, err := e.repo.RefreshCampaignCounters(ctx, campaignID); err != nil {
		return 0, fmt.Errorf("refresh campaign counters: %w", err)
	}
	if c.Status == domain.CampaignCompleted {
		if err := e.repo.ReopenCampaign(ctx, campaignID); err != nil {
			return 0, fmt.Errorf("reopen campaign: %w", err)
		}
	}
	e.invalidateStats(ctx, campaignID)

	e.logger.Info("failed recipients retried",
		slog.String("campaign_id", campaignID),
		slog.Int("retried", retried))
	return retried, nil
}

// Stats reports the recipient partition for a campaign, read-through
// cached when a cache is attached.
func (e *BroadcastEngine) Stats(ctx context.Context, campaignID string) (*domain.CampaignStats, error) {
	if _, err := e.getCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	if e.cache != nil {
		cached, err := e.cache.Get(ctx, campaignID)
		if err != nil {
			e.logger.Warn("stats cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := e.repo.CampaignStats(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign stats: %w", err)
	}
	if e.cache != nil {
		if err := e.cache.Set(ctx, campaignID, stats); err != nil {
			e.logger.Warn("stats cache write failed", slog.Any("error", err))
		}
	}
	return stats, nil
}

// RecordReceipt stamps a delivery or read timestamp on the recipient
// matching the provider message id. The matched campaign's cached stats
// are invalidated so the delivered/read buckets do not lag behind the TTL.
func (e *BroadcastEngine) RecordReceipt(ctx context.Context, providerMessageID string, kind port.ReceiptKind, at time.Time) error {
	var (
		campaignID string
		err        error
	)
	switch kind {
	case port.ReceiptDelivered:
		campaignID, err = e.repo.MarkDelivered(ctx, providerMessageID, at)
	case port.ReceiptRead:
		campaignID, err = e.repo.MarkRead(ctx, providerMessageID, at)
	default:
		return fmt.Errorf("unknown receipt kind %q", kind)
	}
	if err != nil {
		return err
	}
	if campaignID != "" {
		e.invalidateStats(ctx, campaignID)
	}
	return nil
}

func (e *BroadcastEngine) getCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := e.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

func (e *BroadcastEngine) invalidateStats(ctx context.Context, campaignID string) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Invalidate(ctx, campaignID); err != nil {
		e.logger.Warn("stats cache invalidate failed", slog.Any("error", err))
	}
}

// truncate cuts s to at most n bytes without splitting a multibyte rune,
// so the result is always valid UTF-8 and safe to store in a TEXT column.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
