package jobs

import (
	"context"
	"log/slog"

	"recycling/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// balanceReportSchedule runs the report every 15 minutes.
const balanceReportSchedule = "*/15 * * * *"

// BalanceReportJob periodically logs per-recycler storage-point balances.
// Read-only: the job never touches custody, it only reports on it.
type BalanceReportJob struct {
	handler queries.GetStoragePointBalancesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBalanceReportJob creates a job reporting storage-point balances.
func NewBalanceReportJob(
	handler queries.GetStoragePointBalancesQueryHandler, logger *slog.Logger,
) *BalanceReportJob {
	return &BalanceReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "balance_report_job"),
	}
}

// Start schedules the report.
func (j *BalanceReportJob) Start() error {
	_, err := j.cron.AddFunc(balanceReportSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Balance report job started",
		"schedule", balanceReportSchedule)
	return nil
}

// Stop stops the report job.
func (j *BalanceReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Balance report job stopped")
}

func (j *BalanceReportJob) run() {
	ctx := context.Background()

	balances, err := j.handler.Handle(ctx, queries.NewGetStoragePointBalancesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Balance report job failed", "error", err)
		return
	}

	for _, balance := range balances {
		j.logger.InfoContext(ctx, "Storage-point balance",
			"recycler_id", balance.RecyclerID.String(),
			"category", balance.Category,
			"total_weight_kg", balance.TotalWeightKg,
			"total_price", balance.TotalPrice.String(),
		)
	}
}
