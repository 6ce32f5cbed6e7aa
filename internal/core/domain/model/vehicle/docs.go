// Package vehicle provides the Vehicle entity of the delivery fleet and the
// sources that decide whether a freshly commissioned vehicle starts available.
//
// The package includes:
//   - Vehicle: an entity with an issued ID and a mutable availability flag
//   - AvailabilitySource: the injectable decision behind initial availability
//   - TriangularAvailability: the production source drawing from Triangle(0, 1, mode 0.9)
//   - NewFleet: builds a fixed sequence of vehicles from a Sequence and a source
//
// Key business rules:
//   - Vehicle IDs come from a kernel.Sequence and are never reused
//   - Availability only changes through Reserve, which checks and clears the flag at once
package vehicle
