package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validItems = []commands.ItemLine{
	{Name: "book", Price: 110},
	{Name: "chupachups", Price: 44},
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(" Oleg ", "Lviv", 53, validItems)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Oleg", cmd.CustomerName())
	assert.Equal(t, "Lviv", cmd.City())
	assert.Equal(t, kernel.PostOffice(53), cmd.PostOffice())
	assert.Equal(t, validItems, cmd.Items())
}

func TestNewPlaceOrderCommand_CopiesItems(t *testing.T) {
	items := []commands.ItemLine{{Name: "book", Price: 110}}
	cmd, err := commands.NewPlaceOrderCommand("Oleg", "Lviv", 53, items)
	require.NoError(t, err)

	items[0].Price = 1

	assert.Equal(t, 110, cmd.Items()[0].Price)
}

func TestNewPlaceOrderCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("", "Lviv", 53, validItems)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewPlaceOrderCommand_EmptyCity(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("Oleg", " ", 53, validItems)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCityIsRequired)
}

func TestNewPlaceOrderCommand_InvalidPostOffice(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("Oleg", "Lviv", 0, validItems)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPostOfficeIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewPlaceOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand("Oleg", "Lviv", 53, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand("", "", -1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrCityIsRequired)
	assert.ErrorIs(t, err, commands.ErrPostOfficeIsInvalid)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
	assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, cmd.Validate())
}
