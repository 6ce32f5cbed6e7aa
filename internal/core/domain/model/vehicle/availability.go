package vehicle

import (
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// availabilityMode is the mode of the triangular distribution on [0, 1].
	availabilityMode = 0.9
	// availabilityThreshold is the sample value a vehicle must exceed to start available.
	availabilityThreshold = 0.5
)

// AvailabilitySource decides whether a newly commissioned vehicle starts available.
type AvailabilitySource interface {
	Available() bool
}

// AvailabilityFunc adapts an ordinary function to AvailabilitySource.
type AvailabilityFunc func() bool

// Available calls f.
func (f AvailabilityFunc) Available() bool {
	return f()
}

// FixedAvailability always reports the same availability.
type FixedAvailability bool

// Available returns the fixed value.
func (f FixedAvailability) Available() bool {
	return bool(f)
}

// Sampler draws a single value from a continuous distribution.
type Sampler interface {
	Rand() float64
}

// TriangularAvailability draws one sample per vehicle from a triangular
// distribution over [0, 1] with mode 0.9 and reports the vehicle available
// when the sample exceeds 0.5. About 72% of vehicles start available.
type TriangularAvailability struct {
	sampler Sampler
}

// NewTriangularAvailability returns a source backed by the global random generator.
func NewTriangularAvailability() TriangularAvailability {
	return NewTriangularAvailabilityFrom(distuv.NewTriangle(0, 1, availabilityMode, nil))
}

// NewTriangularAvailabilityFrom returns a source drawing from sampler.
func NewTriangularAvailabilityFrom(sampler Sampler) TriangularAvailability {
	return TriangularAvailability{sampler: sampler}
}

// Available draws one sample and compares it with the threshold.
func (t TriangularAvailability) Available() bool {
	return t.sampler.Rand() > availabilityThreshold
}
