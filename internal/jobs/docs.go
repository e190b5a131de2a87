// Package jobs provides scheduled background tasks for the custody ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic checks the ledger needs.
//
// # Available Jobs
//
// 1. CustodyAuditJob - Runs every minute to verify that funded escrow totals
// match vault custody balances per asset type
// 2. DeliveryStatsJob - Runs every five minutes to log carrier and parcel
// counters for operational visibility
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(custodyAuditHandler, undeliveredHandler, carriersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An unbalanced audit line is not an error of the job itself; it is logged
// at error level so alerting can pick it up, and the job keeps running.
package jobs
