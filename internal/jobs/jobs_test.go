package jobs_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFleetHandler(t *testing.T, available ...bool) (queries.GetFleetQueryHandler, *services.LogisticCoordinator) {
	t.Helper()
	ids := kernel.NewSequence()
	fleet := make([]*vehicle.Vehicle, 0, len(available))
	for _, a := range available {
		v, err := vehicle.NewVehicle(ids.Next(), a)
		require.NoError(t, err)
		fleet = append(fleet, v)
	}

	coordinator, err := services.NewLogisticCoordinator(fleet, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return queries.NewGetFleetQueryHandler(coordinator), coordinator
}

func TestFleetReportJob_Run(t *testing.T) {
	t.Run("should log availability and accepted orders", func(t *testing.T) {
		// Given
		handler, coordinator := newFleetHandler(t, true, false, true)
		destination, err := kernel.NewLocation("Lviv", 53)
		require.NoError(t, err)
		o, err := coordinator.NewOrder("Oleg", destination, []order.Item{})
		require.NoError(t, err)
		require.NoError(t, coordinator.PlaceOrder(t.Context(), o))

		var buf bytes.Buffer
		job := jobs.NewFleetReportJob(handler, "", slog.New(slog.NewTextHandler(&buf, nil)))

		// When
		job.Run(t.Context())

		// Then
		out := buf.String()
		assert.Contains(t, out, "component=fleet_report_job")
		assert.Contains(t, out, "vehicles=3")
		assert.Contains(t, out, "available=1")
		assert.Contains(t, out, "accepted_orders=1")
	})
}

func TestFleetReportJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		handler, _ := newFleetHandler(t, true)
		job := jobs.NewFleetReportJob(handler, "not a schedule", slog.New(slog.NewTextHandler(io.Discard, nil)))

		assert.Error(t, job.Start())
	})

	t.Run("should start and stop on the default schedule", func(t *testing.T) {
		handler, _ := newFleetHandler(t, true)
		job := jobs.NewFleetReportJob(handler, "", slog.New(slog.NewTextHandler(io.Discard, nil)))

		require.NoError(t, job.Start())
		job.Stop()
	})
}

type stubJob struct {
	startErr error
	started  bool
	stopped  bool
}

func (s *stubJob) Start() error {
	if s.startErr != nil {
		return s.startErr
	}
	s.started = true
	return nil
}

func (s *stubJob) Stop() { s.stopped = true }

func TestJobManager(t *testing.T) {
	t.Run("should stop started jobs when a later job fails", func(t *testing.T) {
		handler, _ := newFleetHandler(t, true)
		jm := jobs.NewJobManager(handler, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
		first := &stubJob{}
		failing := &stubJob{startErr: errors.New("boom")}
		last := &stubJob{}
		jm.Register("first", first)
		jm.Register("failing", failing)
		jm.Register("last", last)

		err := jm.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start failing job")
		assert.True(t, first.stopped)
		assert.False(t, last.started)
		assert.False(t, last.stopped)
	})

	t.Run("should stop every job once", func(t *testing.T) {
		handler, _ := newFleetHandler(t, true)
		jm := jobs.NewJobManager(handler, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
		stub := &stubJob{}
		jm.Register("stub", stub)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
		jm.StopAll()

		assert.True(t, stub.stopped)
	})
}
