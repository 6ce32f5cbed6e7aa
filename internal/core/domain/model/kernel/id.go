package kernel

import (
	"fmt"
	"sync/atomic"

	"logistics/internal/pkg/errs"
)

// ID identifies vehicles and orders. Valid identifiers start at 1; the zero
// value marks an entity that was never issued an identifier.
type ID int64

// ErrIDIsNotIssued is returned when validating the zero ID.
var ErrIDIsNotIssued = errs.NewValueIsRequiredError("ID must be issued by a Sequence")

// Validate reports whether the ID was issued.
func (id ID) Validate() error {
	if id < 1 {
		return ErrIDIsNotIssued
	}
	return nil
}

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// Sequence issues strictly increasing identifiers starting at 1.
// Each component that creates entities owns its own Sequence, so tests can
// start from a fresh one instead of sharing a process-wide counter.
//
// A Sequence is safe for concurrent use. The zero value is ready to use.
//
// Example:
//
//	var ids kernel.Sequence
//	first := ids.Next()  // 1
//	second := ids.Next() // 2
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first issued ID is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next issues the next identifier.
func (s *Sequence) Next() ID {
	return ID(s.last.Add(1))
}

// Last returns the most recently issued identifier, or 0 if none was issued.
func (s *Sequence) Last() ID {
	return ID(s.last.Load())
}
