package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

// NoSuchOrderMessage is the tracking text for an identifier that was never accepted.
const NoSuchOrderMessage = "No such order."

// ErrOrderAlreadyPlaced is returned when an order with the same ID was already accepted.
var ErrOrderAlreadyPlaced = errors.New("order already placed")

// LogisticCoordinator owns a fixed fleet of vehicles and the list of accepted
// orders. It issues order identifiers, places orders on the first free vehicle,
// and answers lookups by identifier.
//
// Business rules:
//   - The fleet is fixed at construction
//   - Accepted orders only grow, in placement order
//   - An order that finds no free vehicle is dropped and never accepted
//
// LogisticCoordinator is safe for concurrent use. PlaceOrder checks availability,
// binds the vehicle and records the order under a single lock, so two concurrent
// submissions never book the same vehicle.
type LogisticCoordinator struct {
	mu         sync.Mutex
	fleet      []*vehicle.Vehicle
	orders     []*order.Order
	orderIDs   *kernel.Sequence
	dispatcher OrderDispatcher
	logger     *slog.Logger
}

// NewLogisticCoordinator creates a coordinator over fleet. Every vehicle must be valid.
// Order identifiers start at 1.
//
// Example:
//
//	fleet, _ := vehicle.NewFleet(2, kernel.NewSequence(), vehicle.NewTriangularAvailability())
//	coordinator, err := services.NewLogisticCoordinator(fleet, slog.Default())
func NewLogisticCoordinator(fleet []*vehicle.Vehicle, logger *slog.Logger) (*LogisticCoordinator, error) {
	for _, v := range fleet {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &LogisticCoordinator{
		fleet:      slices.Clone(fleet),
		orders:     make([]*order.Order, 0),
		orderIDs:   kernel.NewSequence(),
		dispatcher: NewOrderDispatcher(),
		logger:     logger.With("component", "logistic_coordinator"),
	}, nil
}

// NewOrder builds an order with the next order identifier. The order is not
// placed; pass it to PlaceOrder.
func (c *LogisticCoordinator) NewOrder(
	customerName string,
	destination kernel.Location,
	items []order.Item,
) (*order.Order, error) {
	return order.NewOrder(c.orderIDs.Next(), customerName, destination, items)
}

// PlaceOrder binds o to the first available vehicle and accepts it.
//
// Returns:
//   - nil when the order was accepted
//   - ErrNoFreeVehicles when every vehicle is busy; the order is dropped and
//     neither the accepted orders nor any vehicle change
//   - ErrOrderAlreadyPlaced or validation errors on misuse
func (c *LogisticCoordinator) PlaceOrder(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findOrder(o.ID()) != nil {
		return ErrOrderAlreadyPlaced
	}

	v, err := c.dispatcher.Dispatch(o, c.fleet)
	if errors.Is(err, ErrNoFreeVehicles) {
		c.logger.InfoContext(ctx, ErrNoFreeVehicles.Error(), "order_id", o.ID())
		return err
	}
	if err != nil {
		return err
	}

	c.orders = append(c.orders, o)
	c.logger.InfoContext(ctx, "Order placed",
		"order_id", o.ID(),
		"vehicle_id", v.ID(),
		"city", o.Destination().City(),
		"amount", o.CalculateAmount(),
	)
	return nil
}

// SearchOrder returns the accepted order with the given identifier.
// A miss is reported as an errs.ObjectNotFoundError.
func (c *LogisticCoordinator) SearchOrder(id kernel.ID) (*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if o := c.findOrder(id); o != nil {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("order", id)
}

// TrackOrder returns a human readable status line for the order with the given
// identifier, or NoSuchOrderMessage if no such order was accepted.
func (c *LogisticCoordinator) TrackOrder(id kernel.ID) string {
	o, err := c.SearchOrder(id)
	if err != nil {
		return NoSuchOrderMessage
	}

	return fmt.Sprintf("Your order #%d is sent to %s. Total price is %d$.",
		o.ID(), o.Destination().City(), o.CalculateAmount())
}

// Fleet returns the vehicles in fleet order.
func (c *LogisticCoordinator) Fleet() []*vehicle.Vehicle {
	return slices.Clone(c.fleet)
}

// Orders returns the accepted orders in placement order.
func (c *LogisticCoordinator) Orders() []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.orders)
}

// GoString returns "LogisticCoordinator([<orders>], [<vehicles>])".
func (c *LogisticCoordinator) GoString() string {
	orders := c.Orders()
	ordersRepr := make([]string, 0, len(orders))
	for _, o := range orders {
		ordersRepr = append(ordersRepr, o.GoString())
	}

	vehiclesRepr := make([]string, 0, len(c.fleet))
	for _, v := range c.fleet {
		vehiclesRepr = append(vehiclesRepr, v.GoString())
	}

	return fmt.Sprintf("LogisticCoordinator([%s], [%s])",
		strings.Join(ordersRepr, ", "), strings.Join(vehiclesRepr, ", "))
}

// String returns a short summary of the fleet and the accepted orders.
func (c *LogisticCoordinator) String() string {
	available := 0
	for _, v := range c.fleet {
		if v.IsAvailable() {
			available++
		}
	}

	return fmt.Sprintf("%d of %d vehicles available, %d orders accepted",
		available, len(c.fleet), len(c.Orders()))
}

func (c *LogisticCoordinator) findOrder(id kernel.ID) *order.Order {
	for _, o := range c.orders {
		if o.ID() == id {
			return o
		}
	}
	return nil
}
