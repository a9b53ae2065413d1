// Package kernel provides the shared value objects of the Okada domain model.
//
// The package includes:
//   - UUID: identifier of immutable history records (time ordered, version 7)
//   - Money: an amount in minor FCFA units
//
// Both are immutable and safe for concurrent use.
package kernel
