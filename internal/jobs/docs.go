// Package jobs provides scheduled background tasks for the custody system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// All jobs are read-only reporting tasks; custody transitions happen only
// through the command handlers, never from a schedule.
//
// # Available Jobs
//
// 1. BalanceReportJob - Periodically logs per-recycler storage-point balances
// so operators can spot material sitting at storage points without a
// transport order.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(balancesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
