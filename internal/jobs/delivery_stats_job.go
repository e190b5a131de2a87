package jobs

import (
	"context"
	"log/slog"

	"parcelchain/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DeliveryStatsJob logs marketplace counters for operational visibility:
// how many parcels are still on their way and how many carriers are
// registered.
type DeliveryStatsJob struct {
	undeliveredHandler queries.GetUndeliveredParcelsQueryHandler
	carriersHandler    queries.GetAllCarriersQueryHandler
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewDeliveryStatsJob creates a job that logs delivery statistics every five
// minutes.
func NewDeliveryStatsJob(
	undeliveredHandler queries.GetUndeliveredParcelsQueryHandler,
	carriersHandler queries.GetAllCarriersQueryHandler,
	logger *slog.Logger,
) *DeliveryStatsJob {
	return &DeliveryStatsJob{
		undeliveredHandler: undeliveredHandler,
		carriersHandler:    carriersHandler,
		cron:               cron.New(cron.WithSeconds()),
		logger:             logger.With("component", "delivery_stats_job"),
	}
}

// Start begins the delivery stats job.
func (j *DeliveryStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		parcels, err := j.undeliveredHandler.Handle(ctx, queries.NewGetUndeliveredParcelsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", err)
			return
		}

		carriers, err := j.carriersHandler.Handle(ctx, queries.NewGetAllCarriersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery stats job failed", "error", err)
			return
		}

		inTransit := 0
		for _, p := range parcels {
			if p.CarrierID != nil {
				inTransit++
			}
		}

		j.logger.InfoContext(ctx, "Delivery stats",
			"undelivered_parcels", len(parcels),
			"in_transit", inTransit,
			"registered_carriers", len(carriers),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery stats job started (running every five minutes)")
	return nil
}

// Stop stops the delivery stats job.
func (j *DeliveryStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery stats job stopped")
}
