package vehicle

import (
	"errors"
	"fmt"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when using a nil or zero value Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrFleetSizeIsInvalid is returned by NewFleet for a size below one.
	ErrFleetSizeIsInvalid = errs.NewValueIsInvalidError("fleet size")
	// ErrAvailabilitySourceIsRequired is returned by NewFleet without a source.
	ErrAvailabilitySourceIsRequired = errs.NewValueIsRequiredError("availability source")
	// ErrSequenceIsRequired is returned by NewFleet without an ID sequence.
	ErrSequenceIsRequired = errs.NewValueIsRequiredError("vehicle ID sequence")
)

// Vehicle is a delivery vehicle of the fleet. It keeps its identity for the whole
// lifetime of the process; only the availability flag changes.
//
// Business rules:
//   - A vehicle must have an issued ID
//   - An available vehicle becomes unavailable once reserved for an order
//   - Reserve is the only way to take a vehicle out of service
//
// Vehicle is safe for concurrent use.
type Vehicle struct {
	id kernel.ID

	mu        sync.Mutex
	available bool

	isConstructed bool
}

// NewVehicle creates a vehicle with the given identity and initial availability.
//
// Example:
//
//	ids := kernel.NewSequence()
//	v, err := vehicle.NewVehicle(ids.Next(), true)
//	if err != nil {
//	    // Handle validation error
//	}
func NewVehicle(id kernel.ID, available bool) (*Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Vehicle{
		id:            id,
		available:     available,
		isConstructed: true,
	}, nil
}

// NewFleet commissions size vehicles in order. Every vehicle consumes the next
// ID from ids and one decision from source.
//
// Example:
//
//	fleet, err := vehicle.NewFleet(2, kernel.NewSequence(), vehicle.NewTriangularAvailability())
func NewFleet(size int, ids *kernel.Sequence, source AvailabilitySource) ([]*Vehicle, error) {
	if size < 1 {
		return nil, ErrFleetSizeIsInvalid
	}
	if ids == nil {
		return nil, ErrSequenceIsRequired
	}
	if source == nil {
		return nil, ErrAvailabilitySourceIsRequired
	}

	fleet := make([]*Vehicle, 0, size)
	for range size {
		v, err := NewVehicle(ids.Next(), source.Available())
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, v)
	}

	return fleet, nil
}

// Validate ensures the Vehicle was created via NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id == other.id
}

// ID returns the vehicle identifier.
func (v *Vehicle) ID() kernel.ID {
	return v.id
}

// IsAvailable reports whether the vehicle can take an order.
func (v *Vehicle) IsAvailable() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.available
}

// Reserve takes the vehicle out of service if it is available.
// It returns false, leaving the vehicle untouched, when the vehicle is busy.
func (v *Vehicle) Reserve() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.available {
		return false
	}
	v.available = false
	return true
}

// String returns "<id>: <available>".
func (v *Vehicle) String() string {
	return fmt.Sprintf("%d: %t", v.id, v.IsAvailable())
}

// GoString returns "Vehicle(<id>, <available>)".
func (v *Vehicle) GoString() string {
	return fmt.Sprintf("Vehicle(%d, %t)", v.id, v.IsAvailable())
}
