package commands

import (
	"context"
	"time"

	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"
	"okada/internal/core/domain/services"
	"okada/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler applies a status transition and records it
// in the status history within one transaction.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	record, err := handler.Handle(ctx, cmd)
//	var conflict *errs.VersionIsInvalidError
//	switch {
//	case errors.As(err, &conflict):
//	    // the order changed since it was displayed; reload and retry
//	case errors.Is(err, order.ErrTransitionNotAllowed):
//	    // target is not a legal next status
//	case err != nil:
//	    return err
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	workflow   services.OrderWorkflow
	now        func() time.Time
}

func NewChangeOrderStatusCommandHandler(uowFactory StatusUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		workflow:   services.NewOrderWorkflow(),
		now:        time.Now,
	}
}

// Handle loads the order, checks the optional expected version, validates the
// transition (loading and checking the rider for rider_assigned), then saves
// the order and appends the history record. Nothing is committed on error.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeOrderStatusCommand,
) (order.StatusTransition, error) {
	if err := command.Validate(); err != nil {
		return order.StatusTransition{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusTransition{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	historyRepo := uow.StatusHistoryRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return order.StatusTransition{}, err
	}

	loaded := o.Version()
	if v := command.ExpectedVersion(); v != nil && *v != loaded {
		return order.StatusTransition{}, errs.NewVersionIsInvalidError("order", *v, loaded)
	}

	if err = o.Status().ValidateTransition(command.Status()); err != nil {
		return order.StatusTransition{}, err
	}

	var assignee *rider.Rider
	if command.Status().RequiresRider() && command.RiderID() != nil {
		assignee, err = uow.RiderRepository().Get(ctx, *command.RiderID())
		if err != nil {
			return order.StatusTransition{}, err
		}
		if err = h.workflow.ValidateRider(*command.RiderID(), assignee); err != nil {
			return order.StatusTransition{}, err
		}
	}

	var record order.StatusTransition
	if assignee != nil {
		record, err = h.workflow.Transition(o, command.Status(), assignee, command.Actor(), command.Notes(), h.now())
	} else {
		record, err = o.ChangeStatus(command.Status(), command.RiderID(), command.Actor(), command.Notes(), h.now())
	}
	if err != nil {
		return order.StatusTransition{}, err
	}

	if err = orderRepo.Update(ctx, o, loaded); err != nil {
		return order.StatusTransition{}, err
	}

	if err = historyRepo.Append(ctx, record); err != nil {
		return order.StatusTransition{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusTransition{}, err
	}

	return record, nil
}
