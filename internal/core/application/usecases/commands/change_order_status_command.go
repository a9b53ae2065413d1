package commands

import (
	"errors"
	"fmt"
	"strings"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests moving an order to a new status.
//
// Example:
//
//	riderID := int64(12)
//	cmd, err := NewChangeOrderStatusCommand(42, order.RiderAssigned, &riderID, "", actor, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//	record, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	status          order.Status
	riderID         *int64
	notes           string
	actor           order.Actor
	expectedVersion *int64

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the request shape. Whether the
// transition is legal is decided by the handler against the stored order.
// expectedVersion is optional; when set the transition only applies to that
// version of the order.
func NewChangeOrderStatusCommand(
	orderID int64,
	status order.Status,
	riderID *int64,
	notes string,
	actor order.Actor,
	expectedVersion *int64,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setRiderID(riderID),
		cmd.setActor(actor),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int64 { return c.orderID }

func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }

func (c ChangeOrderStatusCommand) RiderID() *int64 { return copyInt64(c.riderID) }

func (c ChangeOrderStatusCommand) Notes() string { return c.notes }

func (c ChangeOrderStatusCommand) Actor() order.Actor { return c.actor }

func (c ChangeOrderStatusCommand) ExpectedVersion() *int64 { return copyInt64(c.expectedVersion) }

func (c *ChangeOrderStatusCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a positive id", id))
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(s order.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}

func (c *ChangeOrderStatusCommand) setRiderID(id *int64) error {
	if id != nil && *id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("riderId", fmt.Errorf("%d is not a positive id", *id))
	}
	c.riderID = copyInt64(id)
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(a order.Actor) error {
	actor, err := order.NewActor(a.Type, a.ID)
	if err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setExpectedVersion(v *int64) error {
	if v != nil && *v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("expectedVersion", fmt.Errorf("%d is not positive", *v))
	}
	c.expectedVersion = copyInt64(v)
	return nil
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
