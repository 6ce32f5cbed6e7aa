package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultFleetReportSchedule runs the report every thirty seconds.
const DefaultFleetReportSchedule = "*/30 * * * * *"

// FleetReportJob periodically logs how many vehicles are still free and how
// many orders the coordinator has accepted.
type FleetReportJob struct {
	handler  queries.GetFleetQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFleetReportJob creates a report job running on schedule, a cron
// expression with a leading seconds field. An empty schedule falls back to
// DefaultFleetReportSchedule.
func NewFleetReportJob(handler queries.GetFleetQueryHandler, schedule string, logger *slog.Logger) *FleetReportJob {
	if schedule == "" {
		schedule = DefaultFleetReportSchedule
	}
	return &FleetReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fleet_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report immediately.
func (j *FleetReportJob) Run(ctx context.Context) {
	fleet, err := j.handler.Handle(ctx, queries.NewGetFleetQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Fleet report",
		"vehicles", len(fleet.Vehicles),
		"available", fleet.AvailableVehicles(),
		"accepted_orders", fleet.AcceptedOrders,
	)
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *FleetReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}
