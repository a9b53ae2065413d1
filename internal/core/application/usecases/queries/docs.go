// Package queries contains the read side of the order workflow. Handlers run
// plain SQL through GORM and return flat response structs; they never load
// aggregates.
package queries
