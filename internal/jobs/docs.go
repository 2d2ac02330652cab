// Package jobs provides scheduled background tasks for the distribution system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the distribution service.
//
// # Available Jobs
//
// 1. PendingOrdersDigestJob - Runs every minute to log the pending order queue so a growing backlog is visible in the logs
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getPendingOrdersHandler, logger)
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
// The digest job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. That cadence keeps the log volume low while
// still surfacing a backlog quickly.
//
// # Error Handling
//
// - Digest job stays silent while the queue is empty and logs query failures
// - Failed job starts will stop any already running jobs
package jobs
