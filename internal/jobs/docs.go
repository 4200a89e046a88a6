// Package jobs provides scheduled background tasks for the matching system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the matching service requires.
//
// # Available Jobs
//
// 1. MatchExpiryJob - Runs every minute to expire offered matches whose response window lapsed
// 2. LoadExpiryJob - Runs every minute to expire posted loads past their posting window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireMatchesHandler, expireLoadsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "0 * * * * *" and run at the top of every
// minute. Expiry deadlines are minute-grained, so a tighter cadence would only
// burn database round trips.
//
// # Error Handling
//
// - A sweep that finds nothing to expire is a successful no-op, not an error
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
