package cmd

import (
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	coordinator *services.LogisticCoordinator
}

// NewCompositionRoot builds a fleet of config.FleetSize vehicles with random
// initial availability and a coordinator over it.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	return NewCompositionRootWithAvailability(config, logger, vehicle.NewTriangularAvailability())
}

// NewCompositionRootWithAvailability is NewCompositionRoot with an explicit
// availability source for the fleet.
func NewCompositionRootWithAvailability(
	config Config,
	logger *slog.Logger,
	availability vehicle.AvailabilitySource,
) (CompositionRoot, error) {
	fleet, err := vehicle.NewFleet(config.FleetSize, kernel.NewSequence(), availability)
	if err != nil {
		return CompositionRoot{}, err
	}

	coordinator, err := services.NewLogisticCoordinator(fleet, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:      config,
		logger:      logger,
		coordinator: coordinator,
	}, nil
}

func (c *CompositionRoot) Coordinator() *services.LogisticCoordinator {
	return c.coordinator
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.coordinator)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.coordinator)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.coordinator)
}

func (c *CompositionRoot) CreateGetFleetQueryHandler() queries.GetFleetQueryHandler {
	return queries.NewGetFleetQueryHandler(c.coordinator)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateGetFleetQueryHandler(),
	)
	return httpadapter.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetFleetQueryHandler(), c.config.FleetReportSchedule, c.logger)
}
