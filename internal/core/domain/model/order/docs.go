// Package order provides the Order aggregate of the logistics system together
// with its Item value object and lifecycle Status.
//
// The package includes:
//   - Item: an immutable (name, price) pair
//   - Order: the aggregate binding a customer's items and destination to one vehicle
//   - Status: Created until a vehicle is bound, Assigned afterwards
//
// Key business rules:
//   - Orders must have an issued ID, a customer name and a valid destination
//   - A vehicle is bound only if it is available at that moment, and it becomes unavailable
//   - An order holds at most one vehicle and is never reassigned
//   - The amount of an order is the plain sum of its item prices
package order
