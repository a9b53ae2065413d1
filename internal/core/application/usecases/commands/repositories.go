// Package commands contains business operations that modify order state.
// All commands follow a consistent pattern: constructor validation, a unit of
// work per call, and persistence of the aggregate plus its history records.
package commands

import (
	"context"

	"okada/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	EditHistoryRepoFactory interface {
		EditHistoryRepository() ports.EditHistoryRepository
	}

	// StatusUoW covers a status transition: the order, the rider being
	// assigned and the status history are written in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... change status, update order, append history
	//
	//   err = uow.Commit(ctx)
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		RiderRepoFactory
		StatusHistoryRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// EditUoW covers a field edit: the order and its edit history.
	EditUoW interface {
		TxManager
		OrderRepoFactory
		EditHistoryRepoFactory
	}

	EditUoWFactory interface {
		Create() EditUoW
	}
)
