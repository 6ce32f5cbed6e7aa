package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the details of one accepted order.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	order, err := NewGetOrderQueryHandler(coordinator).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // never accepted
//	}
type GetOrderQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given identifier.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// ItemResponse is one item line of an order read model.
type ItemResponse struct {
	Name  string
	Price int
}

// GetOrderQueryResponse is the read model of an accepted order.
// VehicleID is nil only for orders that were never bound.
type GetOrderQueryResponse struct {
	ID           kernel.ID
	CustomerName string
	Destination  kernel.Location
	Items        []ItemResponse
	Amount       int
	VehicleID    *kernel.ID
	Status       string
}
