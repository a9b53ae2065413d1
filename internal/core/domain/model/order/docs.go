// Package order holds the Order aggregate and its status workflow.
//
// The package includes:
//   - Status: the enumerated lifecycle with a single transition table
//   - Order: the aggregate root, mutated only through ChangeStatus and Edit
//   - StatusTransition / FieldEdit: immutable, append-only history records
//   - Timeline: projection of a status onto the happy-path progress bar
//
// Key business rules:
//   - pending -> confirmed -> rider_assigned -> in_transit -> quality_verification
//     -> waiting_approval -> delivered, with cancellation and rejection branches
//   - delivered, cancelled and rejected are terminal
//   - moving to rider_assigned requires a rider
//   - terminal orders cannot be edited
package order
