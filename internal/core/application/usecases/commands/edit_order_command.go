package commands

import (
	"errors"
	"fmt"
	"strings"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand requests a change of the editable, non-status fields of
// an order. The shared reason ends up on every resulting edit record.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	changes         order.Changes
	reason          string
	actor           order.Actor
	expectedVersion *int64

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(
	orderID int64,
	changes order.Changes,
	reason string,
	actor order.Actor,
	expectedVersion *int64,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		changes: changes,
		reason:  strings.TrimSpace(reason),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setExpectedVersion(expectedVersion),
		validateChanges(changes),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() int64 { return c.orderID }

func (c EditOrderCommand) Changes() order.Changes { return c.changes }

func (c EditOrderCommand) Reason() string { return c.reason }

func (c EditOrderCommand) Actor() order.Actor { return c.actor }

func (c EditOrderCommand) ExpectedVersion() *int64 { return copyInt64(c.expectedVersion) }

func (c *EditOrderCommand) setOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a positive id", id))
	}
	c.orderID = id
	return nil
}

func (c *EditOrderCommand) setActor(a order.Actor) error {
	actor, err := order.NewActor(a.Type, a.ID)
	if err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setExpectedVersion(v *int64) error {
	if v != nil && *v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("expectedVersion", fmt.Errorf("%d is not positive", *v))
	}
	c.expectedVersion = copyInt64(v)
	return nil
}

func validateChanges(ch order.Changes) error {
	if ch.DeliveryAddress == nil && ch.DeliveryLat == nil && ch.DeliveryLng == nil &&
		ch.PaymentMethod == nil && ch.Notes == nil {
		return errs.NewValueIsRequiredErrorWithCause("changes", order.ErrNothingToEdit)
	}
	if ch.PaymentMethod != nil {
		return ch.PaymentMethod.Validate()
	}
	return nil
}
