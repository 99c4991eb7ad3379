// Package jobs provides scheduled background tasks for the rental system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the rental service.
//
// # Available Jobs
//
// 1. OverdueRentalJob - Runs on a configurable schedule to detect active rentals past their agreed end date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, "0 * * * * *", logger)
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
// The overdue rental job takes a six-field cron expression (seconds included),
// so "0 * * * * *" runs once a minute. The schedule comes from configuration
// rather than being hardcoded because a reasonable check frequency depends on
// the deployment.
//
// # Error Handling
//
// The overdue rental job logs query failures and keeps running; an overdue
// rental is a business observation, not an error, so hits are reported at
// warning level with the rental's identifiers.
package jobs
