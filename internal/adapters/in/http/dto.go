package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Item is one priced line of an order.
type Item struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Location is a delivery destination.
type Location struct {
	City       string `json:"city"`
	PostOffice int    `json:"postOffice"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	CustomerName string   `json:"customerName"`
	Destination  Location `json:"destination"`
	Items        []Item   `json:"items"`
}

// PlacedOrder is returned when an order was accepted.
type PlacedOrder struct {
	ID int64 `json:"id"`
}

// Order is an accepted order.
type Order struct {
	ID           int64    `json:"id"`
	CustomerName string   `json:"customerName"`
	Destination  Location `json:"destination"`
	Items        []Item   `json:"items"`
	Amount       int      `json:"amount"`
	VehicleID    *int64   `json:"vehicleId,omitempty"`
	Status       string   `json:"status"`
}

// Tracking carries the tracking line of an order.
type Tracking struct {
	Message string `json:"message"`
}

// Vehicle is one member of the fleet.
type Vehicle struct {
	ID        int64 `json:"id"`
	Available bool  `json:"available"`
}

// Fleet lists every vehicle with the number of accepted orders.
type Fleet struct {
	Vehicles       []Vehicle `json:"vehicles"`
	AcceptedOrders int       `json:"acceptedOrders"`
}
