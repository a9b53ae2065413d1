// Package postgres provides the GORM-based persistence of the order workflow:
// the Unit of Work, the embedded schema migrations and, in subpackages, the
// repositories.
//
// Basic transaction management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o, then
//	if err := uow.OrderRepository().Update(ctx, o, loadedVersion); err != nil {
//	    return err
//	}
//	if err := uow.StatusHistoryRepository().Append(ctx, record); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its own transaction; goroutines must not share
// one.
package postgres

import (
	"context"

	"okada/internal/adapters/out/postgres/historyrepo"
	"okada/internal/adapters/out/postgres/orderrepo"
	"okada/internal/adapters/out/postgres/riderrepo"
	"okada/internal/core/ports"

	"gorm.io/gorm"
)

var (
	_ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)
	_ ports.UnitOfWork        = (*GormUnitOfWork)(nil)
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
//
// The factory itself holds no transaction state and is safe for concurrent
// use. Command handlers call Create once per command.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory builds a factory on the application's pool.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
//
// Until Begin is called the repositories it hands out run directly on the
// pool, one statement at a time. After Begin they share the open transaction
// until Commit or Rollback ends it.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling it twice keeps the first transaction.
//
// The context is bound to the transaction: cancelling it aborts the
// statements still to run.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when
// none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// none is active, which is the normal outcome of the deferred Rollback after
// a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the pool when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// RiderRepository returns a rider repository bound like OrderRepository.
func (uow *GormUnitOfWork) RiderRepository() ports.RiderRepository {
	return riderrepo.NewGormRiderRepository(uow.conn())
}

// StatusHistoryRepository returns the status history writer. Entries appended
// through it commit together with the order update.
func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return historyrepo.NewGormStatusHistoryRepository(uow.conn())
}

// EditHistoryRepository returns the edit history writer.
func (uow *GormUnitOfWork) EditHistoryRepository() ports.EditHistoryRepository {
	return historyrepo.NewGormEditHistoryRepository(uow.conn())
}

// conn returns the active transaction, or the pool when none is open.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
