// Package jobs provides scheduled background tasks for the shipment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the assignment pipeline.
//
// # Available Jobs
//
// 1. AutoAssignJob - Runs every fifteen seconds to match pending shipments
// with available couriers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(autoAssignHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Shipments with no eligible courier are not errors: the sweep skips them
// and they stay in the backlog. Infrastructure failures abort the sweep and
// are logged; the next run retries from scratch.
package jobs
