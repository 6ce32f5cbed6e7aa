package kernel_test

import (
	"sync"
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestID_Validate(t *testing.T) {
	t.Run("should reject the zero id", func(t *testing.T) {
		var id kernel.ID

		assert.Equal(t, kernel.ErrIDIsNotIssued, id.Validate())
	})

	t.Run("should accept issued ids", func(t *testing.T) {
		require.NoError(t, kernel.ID(1).Validate())
		assert.Equal(t, "42", kernel.ID(42).String())
	})
}

func TestSequence_Next(t *testing.T) {
	t.Run("should start at one", func(t *testing.T) {
		ids := kernel.NewSequence()

		assert.Equal(t, kernel.ID(0), ids.Last())
		assert.Equal(t, kernel.ID(1), ids.Next())
		assert.Equal(t, kernel.ID(2), ids.Next())
		assert.Equal(t, kernel.ID(2), ids.Last())
	})

	t.Run("should keep independent sequences apart", func(t *testing.T) {
		vehicles := kernel.NewSequence()
		orders := kernel.NewSequence()

		vehicles.Next()
		vehicles.Next()

		assert.Equal(t, kernel.ID(1), orders.Next())
	})

	t.Run("should issue strictly increasing ids", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			ids := kernel.NewSequence()
			n := rapid.IntRange(1, 200).Draw(t, "n")

			prev := kernel.ID(0)
			for range n {
				next := ids.Next()
				if next != prev+1 {
					t.Fatalf("expected %d after %d, got %d", prev+1, prev, next)
				}
				prev = next
			}
		})
	})

	t.Run("should never duplicate ids under concurrent use", func(t *testing.T) {
		const workers, perWorker = 8, 250
		ids := kernel.NewSequence()

		var (
			mu   sync.Mutex
			seen = make(map[kernel.ID]struct{}, workers*perWorker)
			wg   sync.WaitGroup
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					id := ids.Next()
					mu.Lock()
					seen[id] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
		assert.Equal(t, kernel.ID(workers*perWorker), ids.Last())
	})
}
