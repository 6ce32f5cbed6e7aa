package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerNameIsRequired is returned when the customer name is blank.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrVehicleAlreadyAssigned is returned when binding a vehicle to an order that already holds one.
	ErrVehicleAlreadyAssigned = errors.New("order already has a vehicle assigned")
)

// MaxAmount is the highest total an order may reach.
const MaxAmount = math.MaxInt32

// Order represents a customer's delivery order. It is the aggregate root that
// binds an ordered list of items and a destination to at most one vehicle.
//
// Order follows these invariants:
//   - Must have an issued identifier and a non-blank customer name
//   - Must have a valid destination location
//   - Items keep the order in which they were given
//   - The vehicle is nil until bound, and is never replaced afterwards
//
// Order is not safe for concurrent mutation; the LogisticCoordinator serializes
// all binding of its accepted orders.
type Order struct {
	// id is the unique identifier for the order
	id kernel.ID

	// customerName is the name of the customer who placed the order
	customerName string

	// destination is where the items are delivered
	destination kernel.Location

	// items are the ordered goods, in insertion order
	items []Item

	// vehicle is the bound vehicle (nil if unassigned)
	vehicle *vehicle.Vehicle

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Created status with no vehicle.
//
// Parameters:
//   - id: identifier issued by a kernel.Sequence
//   - customerName: name of the customer (must not be blank)
//   - destination: delivery location
//   - items: ordered goods; the slice is copied and their total must not exceed MaxAmount
//
// Example:
//
//	ids := kernel.NewSequence()
//	destination, _ := kernel.NewLocation("Lviv", 53)
//	book, _ := order.NewItem("book", 110)
//	o, err := order.NewOrder(ids.Next(), "Oleg", destination, []order.Item{book})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.ID, customerName string, destination kernel.Location, items []Item) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setDestination(destination),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// CustomerName returns the name of the customer.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Destination returns the delivery location.
func (o *Order) Destination() kernel.Location {
	return o.destination
}

// Items returns a copy of the ordered items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Vehicle returns the bound vehicle, or nil if none is bound yet.
func (o *Order) Vehicle() *vehicle.Vehicle {
	return o.vehicle
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignVehicle binds v to the order if v is available.
//
// On success v is marked unavailable, the order moves to Assigned and true is
// returned. If v is busy, false is returned and neither the order nor v changes.
// An error is returned only for misuse: an unconstructed order or vehicle, or an
// order that already holds a vehicle (ErrVehicleAlreadyAssigned).
//
// Example:
//
//	ok, err := o.AssignVehicle(v)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    // vehicle is busy, try the next one
//	}
func (o *Order) AssignVehicle(v *vehicle.Vehicle) (bool, error) {
	if err := errors.Join(o.Validate(), v.Validate()); err != nil {
		return false, err
	}

	if o.vehicle != nil {
		return false, ErrVehicleAlreadyAssigned
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return false, err
	}

	if !v.Reserve() {
		return false, nil
	}

	o.vehicle = v
	o.status = newStatus
	return true, nil
}

// CalculateAmount returns the sum of all item prices.
func (o *Order) CalculateAmount() int {
	amount := 0
	for _, item := range o.items {
		amount += item.Price()
	}
	return amount
}

// String returns a multi-line summary of the order.
func (o *Order) String() string {
	var b strings.Builder

	b.WriteString("This order:\n")
	fmt.Fprintf(&b, "ID: %d\n", o.id)
	fmt.Fprintf(&b, "User: %s\n", o.customerName)
	fmt.Fprintf(&b, "Destination: %s\n", o.destination)
	b.WriteString("Items:\n")
	for _, item := range o.items {
		fmt.Fprintf(&b, "    * %s\n", item)
	}
	fmt.Fprintf(&b, "Vehicle: %s", o.vehicleString())

	return b.String()
}

// GoString returns "Order(<id>, <customer>, <location>, [<items>], <vehicle>)".
func (o *Order) GoString() string {
	items := make([]string, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.GoString())
	}

	vehicleRepr := "nil"
	if o.vehicle != nil {
		vehicleRepr = o.vehicle.GoString()
	}

	return fmt.Sprintf("Order(%d, %s, %s, [%s], %s)",
		o.id, o.customerName, o.destination.GoString(), strings.Join(items, ", "), vehicleRepr)
}

func (o *Order) vehicleString() string {
	if o.vehicle == nil {
		return "None"
	}
	return o.vehicle.String()
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setItems(items []Item) error {
	amount := 0
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
		if item.Price() > MaxAmount-amount {
			return errs.NewValueIsOutOfRangeError("order amount", int64(amount)+int64(item.Price()), 0, MaxAmount)
		}
		amount += item.Price()
	}
	o.items = slices.Clone(items)
	return nil
}
