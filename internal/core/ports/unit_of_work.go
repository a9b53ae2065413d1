package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the order, rider and history writes of a single
// workflow command into one transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when Begin was not called or the transaction already ended.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories run inside the transaction once Begin has succeeded.
	OrderRepository() OrderRepository
	RiderRepository() RiderRepository
	StatusHistoryRepository() StatusHistoryRepository
	EditHistoryRepository() EditHistoryRepository
}
