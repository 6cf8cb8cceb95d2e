package jobs

import (
	"fmt"
	"log/slog"

	"recycling/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	balanceReportJob *BalanceReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	balancesHandler queries.GetStoragePointBalancesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		balanceReportJob: NewBalanceReportJob(balancesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.balanceReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start balance report job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.balanceReportJob.Stop()
}
