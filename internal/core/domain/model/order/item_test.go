package order_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with name and price", func(t *testing.T) {
		item, err := order.NewItem("book", 110)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "book", item.Name())
		assert.Equal(t, 110, item.Price())
	})

	t.Run("should accept free items", func(t *testing.T) {
		item, err := order.NewItem("sticker", 0)

		require.NoError(t, err)
		assert.Equal(t, 0, item.Price())
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := order.NewItem("book", -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should accept the maximum price", func(t *testing.T) {
		item, err := order.NewItem("gold", order.MaxPrice)

		require.NoError(t, err)
		assert.Equal(t, order.MaxPrice, item.Price())
	})

	t.Run("should fail with price above the maximum", func(t *testing.T) {
		_, err := order.NewItem("gold", order.MaxPrice+1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := order.NewItem(" ", 10)

		require.ErrorIs(t, err, order.ErrItemNameIsRequired)
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item order.Item

		assert.Equal(t, order.ErrItemIsNotConstructed, item.Validate())
	})
}

func TestItem_Formatting(t *testing.T) {
	item, err := order.NewItem("chupachups", 44)
	require.NoError(t, err)

	assert.Equal(t, "chupachups: 44$", item.String())
	assert.Equal(t, "Item(chupachups, 44)", fmt.Sprintf("%#v", item))
}
