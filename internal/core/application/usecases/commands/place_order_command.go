package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	ErrCityIsRequired         = errs.NewValueIsRequiredError("city")
	ErrPostOfficeIsInvalid    = errs.NewValueIsInvalidError("post office")
	ErrItemsAreRequired       = errs.NewValueIsRequiredError("items")
)

// ItemLine is one priced line of a PlaceOrderCommand.
type ItemLine struct {
	Name  string
	Price int
}

// PlaceOrderCommand represents a customer's request to book a delivery of items
// to a post office.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("Oleg", "Lviv", 53, []ItemLine{
//	    {Name: "book", Price: 110},
//	    {Name: "chupachups", Price: 44},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(coordinator)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoFreeVehicles) {
//	    // the whole fleet is busy
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	city         string
	postOffice   kernel.PostOffice
	items        []ItemLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new delivery order.
// Validates that customer name and city are not blank, the post office number is
// positive, and at least one item is given. Item names and prices are validated
// by the domain when the order is built.
func NewPlaceOrderCommand(
	customerName string,
	city string,
	postOffice int,
	items []ItemLine,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setCity(city),
		cmd.setPostOffice(postOffice),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerName returns the name of the ordering customer.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// City returns the destination city.
func (c PlaceOrderCommand) City() string {
	return c.city
}

// PostOffice returns the destination post office number.
func (c PlaceOrderCommand) PostOffice() kernel.PostOffice {
	return c.postOffice
}

// Items returns a copy of the ordered item lines.
func (c PlaceOrderCommand) Items() []ItemLine {
	return append([]ItemLine(nil), c.items...)
}

func (c *PlaceOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}

func (c *PlaceOrderCommand) setPostOffice(postOffice int) error {
	if postOffice <= 0 {
		return ErrPostOfficeIsInvalid
	}

	c.postOffice = kernel.PostOffice(postOffice)
	return nil
}

func (c *PlaceOrderCommand) setItems(items []ItemLine) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]ItemLine(nil), items...)
	return nil
}
