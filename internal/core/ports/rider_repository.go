package ports

import (
	"context"

	"okada/internal/core/domain/model/rider"
)

// RiderRepository gives read access to riders for assignment checks.
type RiderRepository interface {
	// Get retrieves a rider by id. Returns an errs.ObjectNotFoundError when
	// the rider does not exist.
	Get(ctx context.Context, id int64) (*rider.Rider, error)
}
