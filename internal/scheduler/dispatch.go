package scheduler

import (
	"context"
	"log/slog"

	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
)

// NewBroadcastTick returns a tick function that advances every running
// campaign by one bounded batch. Because each send call is an idempotent
// step of the campaign state machine, the loop coexists safely with
// external callers hitting the execute endpoint.
func NewBroadcastTick(svc port.BroadcastUseCase, logger *slog.Logger, batchSize, delayMs int) func(context.Context) {
	return func(ctx context.Context) {
		campaigns, err := svc.ListCampaigns(ctx, "", domain.CampaignRunning)
		if err != nil {
			logger.Error("list running campaigns", slog.Any("error", err))
			return
		}
		for _, c := range campaigns {
			if ctx.Err() != nil {
				return
			}
			res, err := svc.Send(ctx, c.ID, port.SendOptions{BatchSize: batchSize, DelayMs: &delayMs})
			if err != nil {
				logger.Error("dispatch batch failed",
					slog.String("campaign_id", c.ID),
					slog.Any("error", err))
				continue
			}
			logger.Info("dispatch batch",
				slog.String("campaign_id", c.ID),
				slog.Int("sent", res.Sent),
				slog.Int("failed", res.Failed),
				slog.Int("remaining", res.Remaining),
				slog.Bool("completed", res.Completed))
		}
	}
}
