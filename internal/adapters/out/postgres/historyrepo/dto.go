// Package historyrepo persists the append-only status and edit histories.
package historyrepo

import (
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type StatusTransitionDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        int64
	PreviousStatus *string
	NewStatus      string
	Notes          *string
	ChangedBy      int64
	ChangedByType  string
	RiderID        *int64
	CreatedAt      time.Time
}

func (StatusTransitionDTO) TableName() string {
	return "order_status_history"
}

type FieldEditDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      int64
	FieldChanged string
	OldValue     *string
	NewValue     *string
	Reason       *string
	EditedBy     int64
	EditedByType string
	CreatedAt    time.Time
}

func (FieldEditDTO) TableName() string {
	return "order_edit_history"
}

func transitionFromDomain(t order.StatusTransition) StatusTransitionDTO {
	dto := StatusTransitionDTO{
		ID:            t.ID().Bytes(),
		OrderID:       t.OrderID(),
		NewStatus:     t.NewStatus().String(),
		Notes:         optional(t.Notes()),
		ChangedBy:     t.Actor().ID,
		ChangedByType: string(t.Actor().Type),
		RiderID:       t.RiderID(),
		CreatedAt:     t.CreatedAt(),
	}
	if prev := t.PreviousStatus(); prev != nil {
		name := prev.String()
		dto.PreviousStatus = &name
	}
	return dto
}

func transitionToDomain(dto StatusTransitionDTO) (order.StatusTransition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusTransition{}, err
	}

	var previous *order.Status
	if dto.PreviousStatus != nil {
		s, parseErr := order.ParseStatus(*dto.PreviousStatus)
		if parseErr != nil {
			return order.StatusTransition{}, parseErr
		}
		previous = &s
	}

	next, err := order.ParseStatus(dto.NewStatus)
	if err != nil {
		return order.StatusTransition{}, err
	}

	return order.RestoreStatusTransition(
		id,
		dto.OrderID,
		previous,
		next,
		deref(dto.Notes),
		order.Actor{Type: order.ActorType(dto.ChangedByType), ID: dto.ChangedBy},
		dto.RiderID,
		dto.CreatedAt.UTC(),
	)
}

func editFromDomain(e order.FieldEdit) FieldEditDTO {
	return FieldEditDTO{
		ID:           e.ID().Bytes(),
		OrderID:      e.OrderID(),
		FieldChanged: string(e.Field()),
		OldValue:     e.OldValue(),
		NewValue:     e.NewValue(),
		Reason:       optional(e.Reason()),
		EditedBy:     e.Actor().ID,
		EditedByType: string(e.Actor().Type),
		CreatedAt:    e.CreatedAt(),
	}
}

func editToDomain(dto FieldEditDTO) (order.FieldEdit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.FieldEdit{}, err
	}

	return order.RestoreFieldEdit(
		id,
		dto.OrderID,
		order.Field(dto.FieldChanged),
		dto.OldValue,
		dto.NewValue,
		deref(dto.Reason),
		order.Actor{Type: order.ActorType(dto.EditedByType), ID: dto.EditedBy},
		dto.CreatedAt.UTC(),
	)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
