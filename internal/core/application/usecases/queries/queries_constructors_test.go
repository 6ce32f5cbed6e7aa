package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should keep the order id", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(3)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(3), query.OrderID())
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject an id that was never issued", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(0)

		assert.ErrorIs(t, err, kernel.ErrIDIsNotIssued)
	})
}

func TestNewTrackOrderQuery(t *testing.T) {
	t.Run("should accept any id", func(t *testing.T) {
		query := queries.NewTrackOrderQuery(-1)

		assert.Equal(t, kernel.ID(-1), query.OrderID())
		assert.NoError(t, query.Validate())
	})

	t.Run("should fail validation when zero value", func(t *testing.T) {
		assert.ErrorIs(t, queries.TrackOrderQuery{}.Validate(), queries.ErrTrackOrderQueryIsNotConstructed)
	})
}

func TestGetFleetQueryResponse_AvailableVehicles(t *testing.T) {
	response := queries.GetFleetQueryResponse{Vehicles: []queries.VehicleResponse{
		{ID: 1, Available: true},
		{ID: 2, Available: false},
		{ID: 3, Available: true},
	}}

	assert.Equal(t, 2, response.AvailableVehicles())
}
