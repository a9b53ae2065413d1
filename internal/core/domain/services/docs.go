// Package services provides domain services that coordinate the Order and
// Rider aggregates.
//
// The package includes:
//   - OrderWorkflow: applies a status transition to an order, checking the
//     selected rider when the target assigns one
package services
