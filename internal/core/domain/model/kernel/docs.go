// Package kernel provides the shared domain primitives of the logistics system.
//
// The package includes:
//   - ID and Sequence: integer identities issued in strictly increasing order
//   - Location: a delivery destination made of a city and a post office number
//
// Value objects here are immutable and validate their invariants on construction.
package kernel
