package commands

import (
	"errors"
	"fmt"
	"strings"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"
)

// MaxBulkOrders caps the number of orders one bulk request may touch.
const MaxBulkOrders = 100

var ErrBulkChangeOrderStatusCommandIsNotConstructed = errors.New(
	"BulkChangeOrderStatusCommand must be created via NewBulkChangeOrderStatusCommand constructor",
)

// BulkChangeOrderStatusCommand moves several orders to the same status.
// Assigning one rider to many orders is the rider_assigned case.
type BulkChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []int64
	status   order.Status
	riderID  *int64
	notes    string
	actor    order.Actor

	guard guard.ConstructorGuard
}

// NewBulkChangeOrderStatusCommand validates the request. Duplicate order ids
// are collapsed, keeping the first occurrence. An empty note is replaced by
// one naming the bulk action so the history still explains the change.
func NewBulkChangeOrderStatusCommand(
	orderIDs []int64,
	status order.Status,
	riderID *int64,
	notes string,
	actor order.Actor,
) (BulkChangeOrderStatusCommand, error) {
	cmd := BulkChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setStatus(status, riderID),
		cmd.setActor(actor),
	); err != nil {
		return BulkChangeOrderStatusCommand{}, err
	}

	cmd.notes = strings.TrimSpace(notes)
	if cmd.notes == "" {
		cmd.notes = defaultBulkNotes(status, riderID)
	}
	return cmd, nil
}

func (c BulkChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrBulkChangeOrderStatusCommandIsNotConstructed)
}

func (c BulkChangeOrderStatusCommand) OrderIDs() []int64 { return append([]int64(nil), c.orderIDs...) }

func (c BulkChangeOrderStatusCommand) Status() order.Status { return c.status }

func (c BulkChangeOrderStatusCommand) RiderID() *int64 { return copyInt64(c.riderID) }

func (c BulkChangeOrderStatusCommand) Notes() string { return c.notes }

func (c BulkChangeOrderStatusCommand) Actor() order.Actor { return c.actor }

func (c *BulkChangeOrderStatusCommand) setOrderIDs(ids []int64) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}

	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("%d is not a positive id", id))
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) > MaxBulkOrders {
		return errs.NewValueIsOutOfRangeError("orderIds", len(unique), 1, MaxBulkOrders)
	}

	c.orderIDs = unique
	return nil
}

func (c *BulkChangeOrderStatusCommand) setStatus(s order.Status, riderID *int64) error {
	if err := s.Validate(); err != nil {
		return err
	}

	switch {
	case s.RequiresRider() && riderID == nil:
		return order.ErrRiderIsRequired
	case riderID != nil && *riderID <= 0:
		return errs.NewValueIsInvalidErrorWithCause("riderId", fmt.Errorf("%d is not a positive id", *riderID))
	case !s.RequiresRider() && riderID != nil:
		return errs.NewValueIsInvalidErrorWithCause("riderId", order.ErrRiderIsNotExpected)
	}

	c.status = s
	c.riderID = copyInt64(riderID)
	return nil
}

func (c *BulkChangeOrderStatusCommand) setActor(a order.Actor) error {
	actor, err := order.NewActor(a.Type, a.ID)
	if err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func defaultBulkNotes(status order.Status, riderID *int64) string {
	if status.RequiresRider() && riderID != nil {
		return fmt.Sprintf("Bulk assigned to rider %d", *riderID)
	}
	return "Bulk status update to " + status.String()
}
