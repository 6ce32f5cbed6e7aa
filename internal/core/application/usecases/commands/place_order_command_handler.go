package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
)

// PlaceOrderCommandHandler builds an order from a PlaceOrderCommand and submits
// it to the coordinator, which binds the first free vehicle.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(coordinator)
//	orderID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoFreeVehicles):
//	    log.Println("All vehicles are busy")
//	case err != nil:
//	    log.Printf("Order placement failed: %v", err)
//	default:
//	    log.Printf("Order #%d placed", orderID)
//	}
type PlaceOrderCommandHandler struct {
	coordinator ports.Coordinator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(coordinator ports.Coordinator) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		coordinator: coordinator,
	}
}

// Handle validates the command, builds the items, destination and order, and
// places the order. It returns the identifier of the accepted order.
// A dropped order yields the coordinator's error (services.ErrNoFreeVehicles).
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	destination, err := kernel.NewLocation(cmd.City(), cmd.PostOffice())
	if err != nil {
		return 0, err
	}

	lines := cmd.Items()
	items := make([]order.Item, 0, len(lines))
	var itemErrs []error
	for _, line := range lines {
		item, itemErr := order.NewItem(line.Name, line.Price)
		if itemErr != nil {
			itemErrs = append(itemErrs, itemErr)
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return 0, err
	}

	o, err := h.coordinator.NewOrder(cmd.CustomerName(), destination, items)
	if err != nil {
		return 0, err
	}

	if err = h.coordinator.PlaceOrder(ctx, o); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
