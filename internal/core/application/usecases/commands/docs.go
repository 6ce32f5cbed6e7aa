// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, a handler
// working through the ports.Coordinator port, and domain errors passed through.
package commands
