package commands_test

import (
	"errors"
	"testing"

	"okada/internal/core/application/usecases/commands"
	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"
	"okada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statusHandlerMocks() (*MockOrderRepository, *MockRiderRepository, *MockStatusHistoryRepository, *MockUoW, *MockStatusUoWFactory) {
	orderRepo := new(MockOrderRepository)
	riderRepo := new(MockRiderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockUoW)
	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(uow).Once()
	return orderRepo, riderRepo, historyRepo, uow, factory
}

func singleTransition(from, to order.Status) any {
	return mock.MatchedBy(func(records []order.StatusTransition) bool {
		return len(records) == 1 &&
			records[0].PreviousStatus() != nil &&
			*records[0].PreviousStatus() == from &&
			records[0].NewStatus() == to
	})
}

func TestChangeOrderStatusCommandHandler_Handle_PendingToConfirmed(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed, nil, "stock checked", admin, nil)
	require.NoError(t, err)

	o := storedOrder(t, order.Pending, 1)
	orderRepo, _, historyRepo, uow, factory := statusHandlerMocks()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o, int64(1)).Return(nil).Once(),
		historyRepo.On("Append", ctx, singleTransition(order.Pending, order.Confirmed)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	record, err := commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, record.NewStatus())
	assert.Equal(t, "stock checked", record.Notes())
	assert.Equal(t, admin, record.Actor())
	assert.Equal(t, order.Confirmed, o.Status())
	assert.Equal(t, int64(2), o.Version())
	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AssignsAvailableRider(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.RiderAssigned, ptr(int64(9)), "", admin, ptr(int64(4)))
	require.NoError(t, err)

	o := storedOrder(t, order.Confirmed, 4)
	orderRepo, riderRepo, historyRepo, uow, factory := statusHandlerMocks()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(o, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, int64(9)).Return(storedRider(t, 9, rider.StatusApproved), nil).Once(),
		orderRepo.On("Update", ctx, o, int64(4)).Return(nil).Once(),
		historyRepo.On("Append", ctx, singleTransition(order.Confirmed, order.RiderAssigned)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	record, err := commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record.RiderID())
	assert.Equal(t, int64(9), *record.RiderID())
	assert.Equal(t, int64(9), *o.RiderID())
	uow.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_RiderNotAvailable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.RiderAssigned, ptr(int64(9)), "", admin, nil)
	require.NoError(t, err)

	o := storedOrder(t, order.Confirmed, 1)
	orderRepo, riderRepo, historyRepo, uow, factory := statusHandlerMocks()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(o, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, int64(9)).Return(storedRider(t, 9, rider.StatusSuspended), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, rider.ErrRiderIsNotAvailable)
	assert.Equal(t, order.Confirmed, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_RiderRequired(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.RiderAssigned, nil, "", admin, nil)
	require.NoError(t, err)

	orderRepo, riderRepo, historyRepo, uow, factory := statusHandlerMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(storedOrder(t, order.Confirmed, 1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrRiderIsRequired)
	riderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Delivered, nil, "", admin, nil)
	require.NoError(t, err)

	orderRepo, _, historyRepo, uow, factory := statusHandlerMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(storedOrder(t, order.Pending, 1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed, nil, "", admin, ptr(int64(1)))
	require.NoError(t, err)

	o := storedOrder(t, order.Pending, 2)
	orderRepo, _, historyRepo, uow, factory := statusHandlerMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	var conflict *errs.VersionIsInvalidError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(1), conflict.Expected)
	assert.Equal(t, int64(2), conflict.Actual)
	assert.Equal(t, order.Pending, o.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed, nil, "", admin, nil)
	require.NoError(t, err)

	orderRepo, _, historyRepo, uow, factory := statusHandlerMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(nil, errs.NewObjectNotFoundError("order", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_AppendError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Delivered, nil, "", admin, nil)
	require.NoError(t, err)

	o := storedOrder(t, order.InTransit, 5)
	orderRepo, _, historyRepo, uow, factory := statusHandlerMocks()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o, int64(5)).Return(nil).Once(),
		historyRepo.On("Append", ctx, singleTransition(order.InTransit, order.Delivered)).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "disk full")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, order.Confirmed, nil, "", admin, nil)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockStatusUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err = commands.NewChangeOrderStatusCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockStatusUoWFactory)

	_, err := commands.NewChangeOrderStatusCommandHandler(factory).Handle(t.Context(), commands.ChangeOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
