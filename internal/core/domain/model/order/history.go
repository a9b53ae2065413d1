package order

import (
	"fmt"
	"sort"
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/pkg/errs"
)

// ActorType identifies who performed a change.
type ActorType string

const (
	ActorAdmin  ActorType = "admin"
	ActorRider  ActorType = "rider"
	ActorSystem ActorType = "system"
)

// Actor is the operator (or process) behind a history record.
type Actor struct {
	Type ActorType
	ID   int64
}

// NewActor validates the actor type. The system actor may have a zero ID.
func NewActor(actorType ActorType, id int64) (Actor, error) {
	switch actorType {
	case ActorAdmin, ActorRider:
		if id <= 0 {
			return Actor{}, errs.NewValueIsRequiredError("actorId")
		}
	case ActorSystem:
	default:
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("actorType", fmt.Errorf("%q is not a valid actor type", string(actorType)))
	}
	return Actor{Type: actorType, ID: id}, nil
}

// SystemActor is used for changes made by background processes.
func SystemActor() Actor {
	return Actor{Type: ActorSystem}
}

// StatusTransition is one immutable entry of an order's status history.
type StatusTransition struct {
	id        kernel.UUID
	orderID   int64
	previous  *Status
	next      Status
	notes     string
	actor     Actor
	riderID   *int64
	createdAt time.Time
}

func newStatusTransition(
	orderID int64,
	previous *Status,
	next Status,
	notes string,
	actor Actor,
	riderID *int64,
	at time.Time,
) StatusTransition {
	return StatusTransition{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		previous:  previous,
		next:      next,
		notes:     notes,
		actor:     actor,
		riderID:   riderID,
		createdAt: at.UTC(),
	}
}

// RestoreStatusTransition rebuilds a persisted history entry.
func RestoreStatusTransition(
	id kernel.UUID,
	orderID int64,
	previous *Status,
	next Status,
	notes string,
	actor Actor,
	riderID *int64,
	createdAt time.Time,
) (StatusTransition, error) {
	if err := id.Validate(); err != nil {
		return StatusTransition{}, err
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return StatusTransition{}, err
		}
	}
	if err := next.Validate(); err != nil {
		return StatusTransition{}, err
	}
	return StatusTransition{
		id:        id,
		orderID:   orderID,
		previous:  previous,
		next:      next,
		notes:     notes,
		actor:     actor,
		riderID:   riderID,
		createdAt: createdAt,
	}, nil
}

func (t StatusTransition) ID() kernel.UUID { return t.id }

func (t StatusTransition) OrderID() int64 { return t.orderID }

// PreviousStatus is nil for the record written when the order was placed.
func (t StatusTransition) PreviousStatus() *Status {
	if t.previous == nil {
		return nil
	}
	p := *t.previous
	return &p
}

func (t StatusTransition) NewStatus() Status { return t.next }

func (t StatusTransition) Notes() string { return t.notes }

func (t StatusTransition) Actor() Actor { return t.actor }

func (t StatusTransition) RiderID() *int64 {
	if t.riderID == nil {
		return nil
	}
	id := *t.riderID
	return &id
}

func (t StatusTransition) CreatedAt() time.Time { return t.createdAt }

// Field names an order attribute that can be edited outside the status workflow.
type Field string

const (
	FieldDeliveryAddress Field = "deliveryAddress"
	FieldDeliveryLat     Field = "deliveryLat"
	FieldDeliveryLng     Field = "deliveryLng"
	FieldPaymentMethod   Field = "paymentMethod"
	FieldNotes           Field = "notes"
)

// FieldEdit is one immutable entry of an order's edit history.
type FieldEdit struct {
	id        kernel.UUID
	orderID   int64
	field     Field
	oldValue  *string
	newValue  *string
	reason    string
	actor     Actor
	createdAt time.Time
}

func newFieldEdit(orderID int64, field Field, oldValue, newValue *string, reason string, actor Actor, at time.Time) FieldEdit {
	return FieldEdit{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		field:     field,
		oldValue:  oldValue,
		newValue:  newValue,
		reason:    reason,
		actor:     actor,
		createdAt: at.UTC(),
	}
}

// RestoreFieldEdit rebuilds a persisted edit entry.
func RestoreFieldEdit(
	id kernel.UUID,
	orderID int64,
	field Field,
	oldValue, newValue *string,
	reason string,
	actor Actor,
	createdAt time.Time,
) (FieldEdit, error) {
	if err := id.Validate(); err != nil {
		return FieldEdit{}, err
	}
	if field == "" {
		return FieldEdit{}, errs.NewValueIsRequiredError("fieldChanged")
	}
	return FieldEdit{
		id:        id,
		orderID:   orderID,
		field:     field,
		oldValue:  oldValue,
		newValue:  newValue,
		reason:    reason,
		actor:     actor,
		createdAt: createdAt,
	}, nil
}

func (e FieldEdit) ID() kernel.UUID { return e.id }

func (e FieldEdit) OrderID() int64 { return e.orderID }

func (e FieldEdit) Field() Field { return e.field }

func (e FieldEdit) OldValue() *string { return copyString(e.oldValue) }

func (e FieldEdit) NewValue() *string { return copyString(e.newValue) }

func (e FieldEdit) Reason() string { return e.reason }

func (e FieldEdit) Actor() Actor { return e.actor }

func (e FieldEdit) CreatedAt() time.Time { return e.createdAt }

// SortTransitions orders status history for display: oldest first, ties broken
// by the time-ordered record ID.
func SortTransitions(history []StatusTransition) {
	sort.SliceStable(history, func(i, j int) bool {
		if !history[i].createdAt.Equal(history[j].createdAt) {
			return history[i].createdAt.Before(history[j].createdAt)
		}
		return history[i].id.String() < history[j].id.String()
	})
}

// SortFieldEdits orders edit history oldest first.
func SortFieldEdits(history []FieldEdit) {
	sort.SliceStable(history, func(i, j int) bool {
		if !history[i].createdAt.Equal(history[j].createdAt) {
			return history[i].createdAt.Before(history[j].createdAt)
		}
		return history[i].id.String() < history[j].id.String()
	})
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
