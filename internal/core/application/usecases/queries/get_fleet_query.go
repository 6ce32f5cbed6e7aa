package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetFleetQueryIsNotConstructed = errors.New(
		"GetFleetQuery must be created via NewGetFleetQuery constructor",
	)
)

// GetFleetQuery retrieves the availability of every vehicle together with the
// number of accepted orders. This is a parameterless query.
type GetFleetQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFleetQuery creates a fleet query.
func NewGetFleetQuery() GetFleetQuery {
	return GetFleetQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetQueryIsNotConstructed)
}

// VehicleResponse is the read model of one vehicle.
type VehicleResponse struct {
	ID        kernel.ID
	Available bool
}

// GetFleetQueryResponse lists the fleet in fleet order.
type GetFleetQueryResponse struct {
	Vehicles       []VehicleResponse
	AcceptedOrders int
}

// AvailableVehicles counts the vehicles that can still take an order.
func (r GetFleetQueryResponse) AvailableVehicles() int {
	available := 0
	for _, v := range r.Vehicles {
		if v.Available {
			available++
		}
	}
	return available
}

// GetFleetQueryHandler reads the fleet from the coordinator.
type GetFleetQueryHandler struct {
	coordinator ports.Coordinator
}

// NewGetFleetQueryHandler creates a handler for fleet queries.
func NewGetFleetQueryHandler(coordinator ports.Coordinator) GetFleetQueryHandler {
	return GetFleetQueryHandler{coordinator: coordinator}
}

// Handle returns the fleet read model.
func (h GetFleetQueryHandler) Handle(_ context.Context, query GetFleetQuery) (GetFleetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetQueryResponse{}, err
	}

	fleet := h.coordinator.Fleet()
	vehicles := make([]VehicleResponse, 0, len(fleet))
	for _, v := range fleet {
		vehicles = append(vehicles, VehicleResponse{ID: v.ID(), Available: v.IsAvailable()})
	}

	return GetFleetQueryResponse{
		Vehicles:       vehicles,
		AcceptedOrders: len(h.coordinator.Orders()),
	}, nil
}
