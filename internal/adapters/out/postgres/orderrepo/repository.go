package orderrepo

import (
	"context"
	"errors"

	"okada/internal/core/domain/model/order"
	"okada/internal/core/ports"
	"okada/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// The repository never opens transactions itself. It runs on whatever handle
// it was built with, which inside a unit of work is the open transaction, so
// the order row and its history entries commit or roll back together.
//
// Orders are placed by the customer app; this repository only reads them and
// writes the columns the admin workflow owns (see updatableColumns).
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository builds a repository on db, which may be a pool or a
// transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Update writes the workflow columns of an order, provided the stored row is
// still at loadedVersion.
//
// When no row matches, a second lookup tells the two failure modes apart:
//   - the order is gone: errs.ObjectNotFoundError
//   - the order moved on: errs.VersionIsInvalidError carrying both versions
//
// Items and photos are never written here.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, loadedVersion int64) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var stored OrderDTO
		err := r.db.WithContext(ctx).Select("id", "version").First(&stored, "id = ?", dto.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}
		if err != nil {
			return err
		}
		return errs.NewVersionIsInvalidError("order", loadedVersion, stored.Version)
	}

	return nil
}

// Get retrieves an order with its items and quality photos, both in insertion
// order.
//
// Returns an errs.ObjectNotFoundError when no order has the given id. A row
// that no longer satisfies the domain rules (an unknown status, a bad photo
// approval value) is reported as a mapping error rather than returned half
// built.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
