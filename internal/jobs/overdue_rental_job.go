package jobs

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueRentalJob manages the scheduled detection of overdue rentals.
// Runs on a configurable cron schedule to find active rentals whose agreed
// period has already ended and report them through the structured log.
type OverdueRentalJob struct {
	handler  queries.ListOverdueRentalsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueRentalJob creates a new job for detecting overdue rentals.
// Uses ListOverdueRentalsQueryHandler to evaluate the fleet on each tick.
func NewOverdueRentalJob(
	handler queries.ListOverdueRentalsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *OverdueRentalJob {
	return &OverdueRentalJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_rental_job"),
	}
}

// Start begins the overdue rental job on its configured schedule.
func (j *OverdueRentalJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, err := queries.NewListOverdueRentalsQuery(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue rental job failed to build query", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue rental job failed", "error", err)
			return
		}

		for _, r := range overdue {
			j.logger.WarnContext(ctx, "Rental is overdue",
				"rentalID", r.ID.String(),
				"vehicleID", r.VehicleID.String(),
				"customerID", r.CustomerID.String(),
				"period", r.Period.String(),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue rental job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue rental job.
func (j *OverdueRentalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue rental job stopped")
}
