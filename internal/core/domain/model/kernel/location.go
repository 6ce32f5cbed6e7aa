package kernel

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// PostOffice is the number of a post office branch inside a city.
type PostOffice int

// PostOfficeMin is the smallest valid post office number.
const PostOfficeMin PostOffice = 1

var (
	// ErrLocationIsNotConstructed is returned when a zero value Location is used.
	ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
		"location must be created via NewLocation constructor")
	// ErrCityIsRequired is returned when the city is blank.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
)

// Location is the delivery destination of an order: a city and the number of
// the post office that receives the parcel. Location is an immutable value object;
// the post office number is only checked for being positive, not for existence.
//
// Example:
//
//	loc, err := kernel.NewLocation("Lviv", 53)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc)          // city: Lviv, number of the post office: 53
//	fmt.Printf("%#v\n", loc) // Location(Lviv, 53)
type Location struct { //nolint:recvcheck //using for validation
	city       string
	postOffice PostOffice
	guard      guard.ConstructorGuard
}

// NewLocation creates a Location. The city must not be blank and the post office
// number must be at least PostOfficeMin. All violations are reported together.
func NewLocation(city string, postOffice PostOffice) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setCity(city), loc.setPostOffice(postOffice)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// City returns the destination city.
func (l Location) City() string {
	return l.city
}

// PostOffice returns the destination post office number.
func (l Location) PostOffice() PostOffice {
	return l.postOffice
}

// IsEqual reports whether both locations name the same city and post office.
// Both locations must be properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// String implements fmt.Stringer with a human readable form.
func (l Location) String() string {
	return fmt.Sprintf("city: %s, number of the post office: %d", l.city, l.postOffice)
}

// GoString implements fmt.GoStringer and exposes the constructor arguments.
func (l Location) GoString() string {
	return fmt.Sprintf("Location(%s, %d)", l.city, l.postOffice)
}

func (l *Location) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityIsRequired
	}

	l.city = city
	return nil
}

func (l *Location) setPostOffice(postOffice PostOffice) error {
	if postOffice < PostOfficeMin {
		return errs.NewValueIsInvalidErrorWithCause(
			"post office is invalid",
			fmt.Errorf("%d is less than %d", postOffice, PostOfficeMin),
		)
	}

	l.postOffice = postOffice
	return nil
}
