package jobs

import (
	"context"
	"log/slog"

	"parcelchain/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CustodyAuditJob periodically verifies the custody conservation invariant:
// for every asset type, the sum of funded escrow amounts must equal the sum
// of vault custody balances.
type CustodyAuditJob struct {
	handler queries.GetCustodyAuditQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCustodyAuditJob creates a job that audits vault custody every minute.
func NewCustodyAuditJob(handler queries.GetCustodyAuditQueryHandler, logger *slog.Logger) *CustodyAuditJob {
	return &CustodyAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "custody_audit_job"),
	}
}

// Start begins the custody audit job.
func (j *CustodyAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetCustodyAuditQuery()

		lines, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Custody audit job failed", "error", err)
			return
		}

		for _, line := range lines {
			if line.Balanced() {
				continue
			}
			j.logger.ErrorContext(ctx, "Custody imbalance detected",
				"asset_type", line.AssetType,
				"escrow_total", line.EscrowTotal,
				"vault_balance", line.VaultBalance,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Custody audit job started (running every minute)")
	return nil
}

// Stop stops the custody audit job.
func (j *CustodyAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Custody audit job stopped")
}
