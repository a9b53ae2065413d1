package http

import (
	"context"

	"okada/internal/core/application/usecases/commands"
	"okada/internal/core/application/usecases/queries"
	"okada/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type changeOrderStatusHandlerMock struct{ mock.Mock }

func (m *changeOrderStatusHandlerMock) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.StatusTransition, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.StatusTransition), args.Error(1)
}

type bulkChangeOrderStatusHandlerMock struct{ mock.Mock }

func (m *bulkChangeOrderStatusHandlerMock) Handle(
	ctx context.Context,
	cmd commands.BulkChangeOrderStatusCommand,
) (commands.BulkChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.BulkChangeOrderStatusResult), args.Error(1)
}

type editOrderHandlerMock struct{ mock.Mock }

func (m *editOrderHandlerMock) Handle(ctx context.Context, cmd commands.EditOrderCommand) ([]order.FieldEdit, error) {
	args := m.Called(ctx, cmd)
	edits, _ := args.Get(0).([]order.FieldEdit)
	return edits, args.Error(1)
}

type getOrderHandlerMock struct{ mock.Mock }

func (m *getOrderHandlerMock) Handle(ctx context.Context, q queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type listOrdersHandlerMock struct{ mock.Mock }

func (m *listOrdersHandlerMock) Handle(ctx context.Context, q queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.ListOrdersQueryResponse), args.Error(1)
}

type getStatusHistoryHandlerMock struct{ mock.Mock }

func (m *getStatusHistoryHandlerMock) Handle(ctx context.Context, q queries.GetStatusHistoryQuery) ([]queries.StatusHistoryEntry, error) {
	args := m.Called(ctx, q)
	history, _ := args.Get(0).([]queries.StatusHistoryEntry)
	return history, args.Error(1)
}

type getEditHistoryHandlerMock struct{ mock.Mock }

func (m *getEditHistoryHandlerMock) Handle(ctx context.Context, q queries.GetEditHistoryQuery) ([]queries.EditHistoryEntry, error) {
	args := m.Called(ctx, q)
	history, _ := args.Get(0).([]queries.EditHistoryEntry)
	return history, args.Error(1)
}

type getAvailableRidersHandlerMock struct{ mock.Mock }

func (m *getAvailableRidersHandlerMock) Handle(ctx context.Context, q queries.GetAvailableRidersQuery) ([]queries.RiderResponse, error) {
	args := m.Called(ctx, q)
	riders, _ := args.Get(0).([]queries.RiderResponse)
	return riders, args.Error(1)
}
