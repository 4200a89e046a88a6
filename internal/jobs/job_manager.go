package jobs

import (
	"fmt"
	"log/slog"

	"freightmatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	matchExpiryJob *MatchExpiryJob
	loadExpiryJob  *LoadExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireMatchesHandler commands.ExpireMatchesCommandHandler,
	expireLoadsHandler commands.ExpireLoadsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		matchExpiryJob: NewMatchExpiryJob(expireMatchesHandler, logger),
		loadExpiryJob:  NewLoadExpiryJob(expireLoadsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.matchExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start match expiry job: %w", err)
	}

	if err := jm.loadExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.matchExpiryJob.Stop()
		return fmt.Errorf("failed to start load expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.matchExpiryJob.Stop()
	jm.loadExpiryJob.Stop()
}
