// Package jobs provides scheduled background tasks for the port operations
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ScheduleDigestJob - Runs hourly and logs the number of confirmed
// bookings starting within the next 24 hours.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(digestHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The digest job is read-only; failures are logged and the next run retries
// from scratch. Booking state is never written from a job, so the database
// exclusion constraint remains the only arbiter of dock exclusivity.
package jobs
