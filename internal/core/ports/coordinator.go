// Package ports defines the contracts between the application layer and the
// logistics domain, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
)

// Coordinator is the contract of the logistic coordinator as seen by use cases.
// services.LogisticCoordinator is the production implementation.
type Coordinator interface {
	// NewOrder builds an order with the next order identifier without placing it.
	NewOrder(customerName string, destination kernel.Location, items []order.Item) (*order.Order, error)

	// PlaceOrder binds the order to the first free vehicle and accepts it.
	// Returns services.ErrNoFreeVehicles when the whole fleet is busy.
	PlaceOrder(ctx context.Context, o *order.Order) error

	// SearchOrder returns an accepted order or an errs.ObjectNotFoundError.
	SearchOrder(id kernel.ID) (*order.Order, error)

	// TrackOrder returns the human readable tracking line for an order identifier.
	TrackOrder(id kernel.ID) string

	// Fleet returns the vehicles in fleet order.
	Fleet() []*vehicle.Vehicle

	// Orders returns the accepted orders in placement order.
	Orders() []*order.Order
}
