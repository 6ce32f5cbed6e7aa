// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field).
//
// # Available Jobs
//
// 1. FleetReportJob - logs vehicle availability and the number of accepted orders
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getFleetHandler, "*/30 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Query failures are logged and the next run proceeds normally
// - A job that fails to start stops the jobs started before it
package jobs
