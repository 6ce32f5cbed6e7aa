package http

import (
	"errors"
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API of the logistics service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler commands.PlaceOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	trackOrderHandler queries.TrackOrderQueryHandler
	getFleetHandler   queries.GetFleetQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getFleetHandler queries.GetFleetQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler: placeOrderHandler,
		getOrderHandler:   getOrderHandler,
		trackOrderHandler: trackOrderHandler,
		getFleetHandler:   getFleetHandler,
	}
}

// PlaceOrder handles POST /api/v1/orders - books a vehicle for a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lines := make([]commands.ItemLine, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		lines = append(lines, commands.ItemLine{Name: item.Name, Price: item.Price})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		newOrder.CustomerName,
		newOrder.Destination.City,
		newOrder.Destination.PostOffice,
		lines,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusCreated, PlacedOrder{ID: int64(orderID)})
	case errors.Is(err, services.ErrNoFreeVehicles):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case isValidationError(err):
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to place order")
	}
}

// GetOrder handles GET /api/v1/orders/:id - retrieves an accepted order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case err != nil:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	items := make([]Item, len(o.Items))
	for i, item := range o.Items {
		items[i] = Item{Name: item.Name, Price: item.Price}
	}

	response := Order{
		ID:           int64(o.ID),
		CustomerName: o.CustomerName,
		Destination: Location{
			City:       o.Destination.City(),
			PostOffice: int(o.Destination.PostOffice()),
		},
		Items:  items,
		Amount: o.Amount,
		Status: o.Status,
	}
	if o.VehicleID != nil {
		vehicleID := int64(*o.VehicleID)
		response.VehicleID = &vehicleID
	}

	return ctx.JSON(http.StatusOK, response)
}

// TrackOrder handles GET /api/v1/orders/:id/tracking - reports where an order goes.
// Unknown orders still answer 200 with the "No such order." line.
func (s *Server) TrackOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	message, err := s.trackOrderHandler.Handle(ctx.Request().Context(), queries.NewTrackOrderQuery(orderID))
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to track order")
	}

	return ctx.JSON(http.StatusOK, Tracking{Message: message})
}

// GetFleet handles GET /api/v1/vehicles - lists vehicle availability.
func (s *Server) GetFleet(ctx echo.Context) error {
	fleet, err := s.getFleetHandler.Handle(ctx.Request().Context(), queries.NewGetFleetQuery())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve vehicles")
	}

	vehicles := make([]Vehicle, len(fleet.Vehicles))
	for i, v := range fleet.Vehicles {
		vehicles[i] = Vehicle{ID: int64(v.ID), Available: v.Available}
	}

	return ctx.JSON(http.StatusOK, Fleet{Vehicles: vehicles, AcceptedOrders: fleet.AcceptedOrders})
}

func orderIDParam(ctx echo.Context) (kernel.ID, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return kernel.ID(id), nil
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
