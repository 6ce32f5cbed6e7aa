// Command demo books two orders against a fleet of two randomly available
// vehicles and prints their tracking lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"

	"github.com/labstack/gommon/log"
)

type itemLine struct {
	name  string
	price int
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	fleet, err := vehicle.NewFleet(2, kernel.NewSequence(), vehicle.NewTriangularAvailability())
	if err != nil {
		log.Fatalf("Failed to build fleet: %v", err)
	}
	fmt.Println(fleetString(fleet))

	coordinator, err := services.NewLogisticCoordinator(fleet, logger)
	if err != nil {
		log.Fatalf("Failed to build coordinator: %v", err)
	}

	first := mustOrder(coordinator, "Oleg", "Lviv", 53, itemLine{"book", 110}, itemLine{"chupachups", 44})
	fmt.Println(first)
	place(ctx, coordinator, first)

	second := mustOrder(coordinator, "Alex", "Lviv", 54, itemLine{"book", 110}, itemLine{"chupachups", 100})
	place(ctx, coordinator, second)

	fmt.Println(coordinator.TrackOrder(2))
	fmt.Println(coordinator.TrackOrder(1))
}

func mustOrder(
	coordinator *services.LogisticCoordinator,
	customer, city string,
	postOffice kernel.PostOffice,
	lines ...itemLine,
) *order.Order {
	destination, err := kernel.NewLocation(city, postOffice)
	if err != nil {
		log.Fatalf("Invalid destination: %v", err)
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, itemErr := order.NewItem(line.name, line.price)
		if itemErr != nil {
			log.Fatalf("Invalid item: %v", itemErr)
		}
		items = append(items, item)
	}

	o, err := coordinator.NewOrder(customer, destination, items)
	if err != nil {
		log.Fatalf("Invalid order: %v", err)
	}
	return o
}

func place(ctx context.Context, coordinator *services.LogisticCoordinator, o *order.Order) {
	err := coordinator.PlaceOrder(ctx, o)
	switch {
	case errors.Is(err, services.ErrNoFreeVehicles):
		fmt.Println(err)
	case err != nil:
		log.Fatalf("Failed to place order: %v", err)
	}
}

func fleetString(fleet []*vehicle.Vehicle) string {
	parts := make([]string, len(fleet))
	for i, v := range fleet {
		parts[i] = v.GoString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
