// Package errs provides the typed errors shared by the Okada order workflow.
// Every error type pairs a sentinel (for errors.Is) with a struct carrying the
// offending parameter and an optional cause (for errors.As).
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an aggregate or record cannot be found
//   - VersionIsInvalidError: an optimistic concurrency check failed
//
// Adapters map the sentinels onto transport codes (404, 409, 422).
package errs
