package order

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when a zero value Item is used.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemNameIsRequired is returned when an item has a blank name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// MaxPrice is the highest price a single item may carry.
const MaxPrice = 1_000_000_000

// Item is a priced piece of cargo. Items are immutable value objects;
// two items with the same name and price are interchangeable.
//
// Example:
//
//	book, _ := order.NewItem("book", 110)
//	fmt.Println(book)          // book: 110$
//	fmt.Printf("%#v\n", book) // Item(book, 110)
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price int

	guard guard.ConstructorGuard
}

// NewItem creates an Item. The name must not be blank and the price must be
// within [0, MaxPrice].
func NewItem(name string, price int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setName(name), item.setPrice(price)); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the item price in whole currency units.
func (i Item) Price() int {
	return i.price
}

// String returns "<name>: <price>$".
func (i Item) String() string {
	return fmt.Sprintf("%s: %d$", i.name, i.price)
}

// GoString returns "Item(<name>, <price>)".
func (i Item) GoString() string {
	return fmt.Sprintf("Item(%s, %d)", i.name, i.price)
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrItemNameIsRequired
	}

	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", price))
	}
	if price > MaxPrice {
		return errs.NewValueIsOutOfRangeError("price", price, 0, MaxPrice)
	}

	i.price = price
	return nil
}
