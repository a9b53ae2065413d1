package historyrepo

import (
	"context"

	"okada/internal/core/domain/model/order"
	"okada/internal/core/ports"

	"gorm.io/gorm"
)

var (
	_ ports.StatusHistoryRepository = (*GormStatusHistoryRepository)(nil)
	_ ports.StatusHistoryReader     = (*GormStatusHistoryRepository)(nil)
	_ ports.EditHistoryRepository   = (*GormEditHistoryRepository)(nil)
	_ ports.EditHistoryReader       = (*GormEditHistoryRepository)(nil)
)

// GormStatusHistoryRepository implements ports.StatusHistoryRepository and
// ports.StatusHistoryReader on the order_status_history table.
//
// Records are only ever inserted. Their ids are generated in the domain, so a
// record can be appended in the same transaction as the order update that
// produced it.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository builds a repository on db, which may be a
// pool or a transaction.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts records in one statement. An empty call is a no-op.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, records ...order.StatusTransition) error {
	if len(records) == 0 {
		return nil
	}
	dtos := make([]StatusTransitionDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, transitionFromDomain(rec))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListByOrder returns the history of an order, oldest first. Entries written
// in the same instant keep the order of their time-ordered ids.
func (r *GormStatusHistoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]order.StatusTransition, error) {
	var dtos []StatusTransitionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusTransition, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := transitionToDomain(dto)
		if err != nil {
			return nil, err
		}
		history = append(history, rec)
	}
	order.SortTransitions(history)
	return history, nil
}

// GormEditHistoryRepository implements ports.EditHistoryRepository and
// ports.EditHistoryReader on the order_edit_history table. One edit writes one
// row per changed field.
type GormEditHistoryRepository struct {
	db *gorm.DB
}

// NewGormEditHistoryRepository builds a repository on db, which may be a pool
// or a transaction.
func NewGormEditHistoryRepository(db *gorm.DB) *GormEditHistoryRepository {
	return &GormEditHistoryRepository{db: db}
}

// Append inserts edits in one statement. An empty call is a no-op.
func (r *GormEditHistoryRepository) Append(ctx context.Context, edits ...order.FieldEdit) error {
	if len(edits) == 0 {
		return nil
	}
	dtos := make([]FieldEditDTO, 0, len(edits))
	for _, e := range edits {
		dtos = append(dtos, editFromDomain(e))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListByOrder returns the edit history of an order, oldest first.
func (r *GormEditHistoryRepository) ListByOrder(ctx context.Context, orderID int64) ([]order.FieldEdit, error) {
	var dtos []FieldEditDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]order.FieldEdit, 0, len(dtos))
	for _, dto := range dtos {
		e, err := editToDomain(dto)
		if err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	order.SortFieldEdits(history)
	return history, nil
}
