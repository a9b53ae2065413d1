package commands

import (
	"context"

	"okada/internal/core/domain/model/order"
)

// BulkFailure is an order the bulk change could not move, with the reason.
type BulkFailure struct {
	OrderID int64
	Err     error
}

type BulkChangeOrderStatusResult struct {
	Succeeded []order.StatusTransition
	Failed    []BulkFailure
}

// BulkChangeOrderStatusCommandHandler applies the same transition to several
// orders. Each order gets its own unit of work, so one illegal or conflicting
// order does not undo the others.
//
// Example:
//
//	handler := NewBulkChangeOrderStatusCommandHandler(uowFactory)
//	res, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // the command itself was invalid
//	}
//	for _, f := range res.Failed {
//	    log.Printf("order %d: %v", f.OrderID, f.Err)
//	}
type BulkChangeOrderStatusCommandHandler struct {
	single ChangeOrderStatusCommandHandler
}

func NewBulkChangeOrderStatusCommandHandler(uowFactory StatusUoWFactory) BulkChangeOrderStatusCommandHandler {
	return BulkChangeOrderStatusCommandHandler{
		single: NewChangeOrderStatusCommandHandler(uowFactory),
	}
}

// Handle runs the orders in the given order. Once ctx is done the remaining
// orders are reported as failed with the context error.
func (h BulkChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command BulkChangeOrderStatusCommand,
) (BulkChangeOrderStatusResult, error) {
	if err := command.Validate(); err != nil {
		return BulkChangeOrderStatusResult{}, err
	}

	res := BulkChangeOrderStatusResult{
		Succeeded: make([]order.StatusTransition, 0, len(command.OrderIDs())),
		Failed:    make([]BulkFailure, 0),
	}

	for _, id := range command.OrderIDs() {
		if err := ctx.Err(); err != nil {
			res.Failed = append(res.Failed, BulkFailure{OrderID: id, Err: err})
			continue
		}

		single, err := NewChangeOrderStatusCommand(id, command.Status(), command.RiderID(), command.Notes(), command.Actor(), nil)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{OrderID: id, Err: err})
			continue
		}

		record, err := h.single.Handle(ctx, single)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{OrderID: id, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, record)
	}

	return res, nil
}
