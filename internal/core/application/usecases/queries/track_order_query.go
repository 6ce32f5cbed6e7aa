package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery asks for the human readable tracking line of an order.
// Any identifier is accepted; unknown ones produce the "no such order" text.
type TrackOrderQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for orderID.
func NewTrackOrderQuery(orderID kernel.ID) TrackOrderQuery {
	return TrackOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the identifier being tracked.
func (q TrackOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// TrackOrderQueryHandler produces tracking lines through the coordinator.
type TrackOrderQueryHandler struct {
	coordinator ports.Coordinator
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
func NewTrackOrderQueryHandler(coordinator ports.Coordinator) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{coordinator: coordinator}
}

// Handle returns the tracking line for the queried order.
func (h TrackOrderQueryHandler) Handle(_ context.Context, query TrackOrderQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	return h.coordinator.TrackOrder(query.OrderID()), nil
}
