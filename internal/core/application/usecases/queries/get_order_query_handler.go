package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetOrderQueryHandler looks accepted orders up in the coordinator.
type GetOrderQueryHandler struct {
	coordinator ports.Coordinator
}

// NewGetOrderQueryHandler creates a handler for order lookups.
func NewGetOrderQueryHandler(coordinator ports.Coordinator) GetOrderQueryHandler {
	return GetOrderQueryHandler{coordinator: coordinator}
}

// Handle returns the read model of the requested order, or the coordinator's
// errs.ObjectNotFoundError when the order was never accepted.
func (h GetOrderQueryHandler) Handle(_ context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.coordinator.SearchOrder(query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{Name: item.Name(), Price: item.Price()})
	}

	response := GetOrderQueryResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Destination:  o.Destination(),
		Items:        items,
		Amount:       o.CalculateAmount(),
		Status:       o.Status().String(),
	}
	if v := o.Vehicle(); v != nil {
		vehicleID := v.ID()
		response.VehicleID = &vehicleID
	}

	return response, nil
}
