package riderrepo

import (
	"context"
	"errors"

	"okada/internal/core/domain/model/rider"
	"okada/internal/core/ports"
	"okada/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.RiderRepository = (*GormRiderRepository)(nil)

// GormRiderRepository implements ports.RiderRepository using GORM.
//
// Riders are onboarded and approved by other tools, so the repository is read
// only. The command side uses it to check that a rider picked for an order is
// still approved at the moment of assignment.
type GormRiderRepository struct {
	db *gorm.DB
}

// NewGormRiderRepository builds a repository on db, which may be a pool or a
// transaction.
func NewGormRiderRepository(db *gorm.DB) *GormRiderRepository {
	return &GormRiderRepository{db: db}
}

// Get retrieves a rider by id. Returns an errs.ObjectNotFoundError when the
// rider does not exist.
func (r *GormRiderRepository) Get(ctx context.Context, id int64) (*rider.Rider, error) {
	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id)
		}
		return nil, err
	}
	return toDomain(dto)
}
