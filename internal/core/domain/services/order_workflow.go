package services

import (
	"errors"
	"fmt"
	"time"

	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"
)

// ErrRiderMismatch is returned when the loaded rider is not the one requested.
var ErrRiderMismatch = errors.New("rider does not match the requested rider id")

// OrderWorkflow moves orders through the status workflow.
//
// Business rules:
//   - the transition itself is validated by the Order aggregate
//   - a rider_assigned transition needs an available (approved) rider
//   - a rider is never accepted for any other target
//
// Example usage:
//
//	wf := services.NewOrderWorkflow()
//	record, err := wf.Transition(o, order.RiderAssigned, r, actor, "", time.Now())
//	if err != nil {
//	    return err
//	}
//	// persist o and append record to the status history
type OrderWorkflow struct{}

func NewOrderWorkflow() OrderWorkflow {
	return OrderWorkflow{}
}

// Transition applies target to o. r is the selected rider and must be nil for
// targets that do not assign one. The order is left untouched on error.
func (OrderWorkflow) Transition(
	o *order.Order,
	target order.Status,
	r *rider.Rider,
	actor order.Actor,
	notes string,
	now time.Time,
) (order.StatusTransition, error) {
	if err := o.Validate(); err != nil {
		return order.StatusTransition{}, err
	}

	var riderID *int64
	if r != nil {
		if err := r.ValidateAssignable(); err != nil {
			return order.StatusTransition{}, err
		}
		id := r.ID()
		riderID = &id
	}

	return o.ChangeStatus(target, riderID, actor, notes, now)
}

// ValidateRider checks that r is the rider the caller asked for.
func (OrderWorkflow) ValidateRider(requested int64, r *rider.Rider) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.ID() != requested {
		return fmt.Errorf("%w: requested %d, loaded %d", ErrRiderMismatch, requested, r.ID())
	}
	return nil
}
