package jobs

import (
	"fmt"
	"log/slog"

	"parcelchain/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	custodyAuditJob  *CustodyAuditJob
	deliveryStatsJob *DeliveryStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	custodyAuditHandler queries.GetCustodyAuditQueryHandler,
	undeliveredHandler queries.GetUndeliveredParcelsQueryHandler,
	carriersHandler queries.GetAllCarriersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		custodyAuditJob:  NewCustodyAuditJob(custodyAuditHandler, logger),
		deliveryStatsJob: NewDeliveryStatsJob(undeliveredHandler, carriersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.custodyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start custody audit job: %w", err)
	}

	if err := jm.deliveryStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.custodyAuditJob.Stop()
		return fmt.Errorf("failed to start delivery stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.custodyAuditJob.Stop()
	jm.deliveryStatsJob.Stop()
}
