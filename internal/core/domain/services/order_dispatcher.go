package services

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// ErrNoFreeVehicles is returned when every vehicle of the fleet is busy.
// Its message is the notice shown to a customer whose order could not be placed.
var ErrNoFreeVehicles = errors.New("There are no free vehicles, your order could not be placed.") //nolint:staticcheck // customer facing text

// OrderDispatcher is a domain service that binds an order to a vehicle using a
// first-fit linear scan over the fleet.
//
// Business rules:
//   - Orders must be valid and not yet bound before dispatch
//   - Vehicles are tried in fleet order; the first available one wins
//   - Only the winning vehicle is touched, busy vehicles are left as they are
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	v, err := dispatcher.Dispatch(o, fleet)
//	if errors.Is(err, services.ErrNoFreeVehicles) {
//	    // every vehicle is busy
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch binds o to the first available vehicle in fleet and returns that vehicle.
//
// Returns:
//   - *vehicle.Vehicle: the vehicle now bound to the order
//   - error: ErrNoFreeVehicles if no vehicle is available, or validation errors
func (d OrderDispatcher) Dispatch(o *order.Order, fleet []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Vehicle() != nil {
		return nil, order.ErrVehicleAlreadyAssigned
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	for _, v := range fleet {
		assigned, err := o.AssignVehicle(v)
		if err != nil {
			return nil, err
		}

		if assigned {
			return v, nil
		}
	}

	return nil, ErrNoFreeVehicles
}
