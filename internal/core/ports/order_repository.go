// Package ports defines the persistence contracts of the order workflow.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"okada/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Update persists a mutated order. loadedVersion is the version the
	// aggregate had when it was read; when the stored row no longer carries
	// that version the update is refused with an errs.VersionIsInvalidError.
	//
	// Example:
	//   loaded := o.Version()
	//   if _, err := o.ChangeStatus(...); err != nil {
	//       return err
	//   }
	//   if err := repo.Update(ctx, o, loaded); err != nil {
	//       return err // possibly a concurrent write
	//   }
	Update(ctx context.Context, aggregate *order.Order, loadedVersion int64) error

	// Get retrieves an order with its items and quality photos. Returns an
	// errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
