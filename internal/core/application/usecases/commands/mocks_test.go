package commands_test

import (
	"context"

	"okada/internal/core/application/usecases/commands"
	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"
	"okada/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, loadedVersion int64) error {
	args := m.Called(ctx, o, loadedVersion)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Get(ctx context.Context, id int64) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Append(ctx context.Context, records ...order.StatusTransition) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

type MockEditHistoryRepository struct{ mock.Mock }

func (m *MockEditHistoryRepository) Append(ctx context.Context, edits ...order.FieldEdit) error {
	args := m.Called(ctx, edits)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

func (m *MockUoW) EditHistoryRepository() ports.EditHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.EditHistoryRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockEditUoWFactory struct{ mock.Mock }

func (m *MockEditUoWFactory) Create() commands.EditUoW {
	args := m.Called()
	return args.Get(0).(commands.EditUoW)
}
