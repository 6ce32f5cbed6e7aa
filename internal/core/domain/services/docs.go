// Package services provides domain services that orchestrate business operations
// across the order and vehicle aggregates of the logistics system.
//
// The package includes:
//   - OrderDispatcher: binds an order to the first available vehicle of a fleet
//   - LogisticCoordinator: owns the fleet and the accepted orders, places,
//     searches and tracks orders
package services
