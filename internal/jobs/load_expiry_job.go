package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightmatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// now returns the sweep evaluation instant. Jobs compare posting and offer
// deadlines against it, so it is always UTC.
func now() time.Time {
	return time.Now().UTC()
}

// LoadExpiryJob sweeps posted loads whose posting window has lapsed without
// an accepted match. Runs every minute.
type LoadExpiryJob struct {
	handler commands.ExpireLoadsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLoadExpiryJob creates a job that expires lapsed postings.
func NewLoadExpiryJob(handler commands.ExpireLoadsCommandHandler, logger *slog.Logger) *LoadExpiryJob {
	return &LoadExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "load_expiry_job"),
	}
}

// Start begins the load expiry sweep, running at the top of every minute.
func (j *LoadExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireLoadsCommand(now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Load expiry command rejected", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Load expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Load expiry job started (running every minute)")
	return nil
}

// Stop stops the load expiry job.
func (j *LoadExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Load expiry job stopped")
}
