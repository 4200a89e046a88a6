package jobs

import (
	"context"
	"log/slog"

	"freightmatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MatchExpiryJob sweeps offered matches whose response window has lapsed.
// Runs every minute so a stale offer never blocks a load for long.
type MatchExpiryJob struct {
	handler commands.ExpireMatchesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMatchExpiryJob creates a job that expires stale offers.
// A zero olderThan in the command selects the default offer TTL.
func NewMatchExpiryJob(handler commands.ExpireMatchesCommandHandler, logger *slog.Logger) *MatchExpiryJob {
	return &MatchExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "match_expiry_job"),
	}
}

// Start begins the match expiry sweep, running at the top of every minute.
func (j *MatchExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireMatchesCommand(now(), 0)
		if err != nil {
			j.logger.ErrorContext(ctx, "Match expiry command rejected", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Match expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Match expiry job started (running every minute)")
	return nil
}

// Stop stops the match expiry job.
func (j *MatchExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Match expiry job stopped")
}
