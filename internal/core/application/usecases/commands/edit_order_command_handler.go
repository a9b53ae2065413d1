package commands

import (
	"context"
	"time"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"
)

// EditOrderCommandHandler applies field edits and appends one edit record per
// changed field, in one transaction.
type EditOrderCommandHandler struct {
	uowFactory EditUoWFactory
	now        func() time.Time
}

func NewEditOrderCommandHandler(uowFactory EditUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the edit records that were appended.
func (h EditOrderCommandHandler) Handle(ctx context.Context, command EditOrderCommand) ([]order.FieldEdit, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	historyRepo := uow.EditHistoryRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	loaded := o.Version()
	if v := command.ExpectedVersion(); v != nil && *v != loaded {
		return nil, errs.NewVersionIsInvalidError("order", *v, loaded)
	}

	edits, err := o.Edit(command.Changes(), command.Actor(), command.Reason(), h.now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, loaded); err != nil {
		return nil, err
	}

	if err = historyRepo.Append(ctx, edits...); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return edits, nil
}
