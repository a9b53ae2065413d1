package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsFinal is returned when editing an order in a terminal status.
	ErrOrderIsFinal = errors.New("order is in a final status and can no longer be edited")

	// ErrNothingToEdit is returned when an edit leaves every field unchanged.
	ErrNothingToEdit = errors.New("edit does not change any field")

	// ErrRiderIsRequired is returned when moving to rider_assigned without a rider.
	ErrRiderIsRequired = errs.NewValueIsRequiredErrorWithCause(
		"riderId",
		errors.New("a rider must be selected to assign the order"),
	)

	// ErrRiderIsNotExpected is returned when a rider is supplied for a status
	// that does not assign one.
	ErrRiderIsNotExpected = errors.New("a rider can only be supplied when assigning the order")
)

// Order is the aggregate root of the status workflow.
//
// Invariants:
//   - status is always a defined Status
//   - a terminal status accepts no further transition and no field edit
//   - every transition and edit yields exactly one immutable history record per
//     change, returned to the caller for persistence
//   - version grows by one on every mutation
//
// Items and quality photos are attached read-only projections.
type Order struct {
	id              int64
	number          string
	customerID      int64
	status          Status
	riderID         *int64
	deliveryAddress string
	deliveryLat     *string
	deliveryLng     *string
	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	subtotal        kernel.Money
	deliveryFee     kernel.Money
	total           kernel.Money
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
	version         int64

	items  []Item
	photos []QualityPhoto

	guard guard.ConstructorGuard
}

// NewOrderParams carries the data of a freshly placed order.
type NewOrderParams struct {
	ID              int64
	Number          string
	CustomerID      int64
	DeliveryAddress string
	PaymentMethod   PaymentMethod
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Notes           string
	Items           []Item
}

// NewOrder places an order in the pending status and returns the initial
// history record (with no previous status).
//
//	o, initial, err := order.NewOrder(params, order.SystemActor(), time.Now())
//	if err != nil {
//	    return err
//	}
//	// persist o, then append initial to the status history
func NewOrder(p NewOrderParams, actor Actor, now time.Time) (*Order, StatusTransition, error) {
	now = now.UTC()
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		subtotal:      p.Subtotal,
		deliveryFee:   p.DeliveryFee,
		total:         p.Subtotal.Add(p.DeliveryFee),
		notes:         p.Notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		items:         append([]Item(nil), p.Items...),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setCustomerID(p.CustomerID),
		o.setDeliveryAddress(p.DeliveryAddress),
		o.setPaymentMethod(p.PaymentMethod),
	); err != nil {
		return nil, StatusTransition{}, err
	}

	return o, newStatusTransition(o.id, nil, Pending, "", actor, nil, now), nil
}

// Snapshot is the full persisted state of an order, used to rehydrate it.
type Snapshot struct {
	ID              int64
	Number          string
	CustomerID      int64
	Status          Status
	RiderID         *int64
	DeliveryAddress string
	DeliveryLat     *string
	DeliveryLng     *string
	PaymentMethod   PaymentMethod
	PaymentStatus   PaymentStatus
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64
	Items           []Item
	Photos          []QualityPhoto
}

// RestoreOrder rebuilds an order from storage. Stored data is validated so a
// corrupted row never produces an aggregate that breaks its invariants.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		riderID:       s.RiderID,
		deliveryLat:   s.DeliveryLat,
		deliveryLng:   s.DeliveryLng,
		paymentStatus: s.PaymentStatus,
		subtotal:      s.Subtotal,
		deliveryFee:   s.DeliveryFee,
		total:         s.Total,
		notes:         s.Notes,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		version:       s.Version,
		items:         append([]Item(nil), s.Items...),
		photos:        append([]QualityPhoto(nil), s.Photos...),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setCustomerID(s.CustomerID),
		o.setStatus(s.Status),
		o.setDeliveryAddress(s.DeliveryAddress),
		o.setPaymentMethod(s.PaymentMethod),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if s.Version <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is not positive", s.Version))
	}

	return o, nil
}

// Validate ensures the order was built by one of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() int64 { return o.id }

func (o *Order) Number() string { return o.number }

func (o *Order) CustomerID() int64 { return o.customerID }

func (o *Order) Status() Status { return o.status }

// RiderID returns the assigned rider, nil until the order reaches rider_assigned.
func (o *Order) RiderID() *int64 {
	if o.riderID == nil {
		return nil
	}
	id := *o.riderID
	return &id
}

func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

func (o *Order) DeliveryLat() *string { return copyString(o.deliveryLat) }

func (o *Order) DeliveryLng() *string { return copyString(o.deliveryLng) }

func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

func (o *Order) Subtotal() kernel.Money { return o.subtotal }

func (o *Order) DeliveryFee() kernel.Money { return o.deliveryFee }

func (o *Order) Total() kernel.Money { return o.total }

func (o *Order) Notes() string { return o.notes }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version is the optimistic concurrency token, bumped by every mutation.
func (o *Order) Version() int64 { return o.version }

func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }

func (o *Order) Photos() []QualityPhoto { return append([]QualityPhoto(nil), o.photos...) }

// NextStatuses returns the statuses this order may move to.
func (o *Order) NextStatuses() []Status {
	return o.status.NextStatuses()
}

// ChangeStatus moves the order to target and returns the history record
// describing the move.
//
// Business rules:
//   - target must be a legal successor of the current status
//   - rider_assigned requires riderID; other targets must not carry one
//   - nothing is modified when an error is returned
func (o *Order) ChangeStatus(target Status, riderID *int64, actor Actor, notes string, now time.Time) (StatusTransition, error) {
	if err := o.Validate(); err != nil {
		return StatusTransition{}, err
	}
	if err := o.status.ValidateTransition(target); err != nil {
		return StatusTransition{}, err
	}

	switch {
	case target.RequiresRider() && riderID == nil:
		return StatusTransition{}, ErrRiderIsRequired
	case target.RequiresRider() && *riderID <= 0:
		return StatusTransition{}, errs.NewValueIsInvalidErrorWithCause("riderId", fmt.Errorf("%d is not a valid rider id", *riderID))
	case !target.RequiresRider() && riderID != nil:
		return StatusTransition{}, errs.NewValueIsInvalidErrorWithCause("riderId", ErrRiderIsNotExpected)
	}

	previous := o.status
	o.status = target
	if riderID != nil {
		id := *riderID
		o.riderID = &id
	}
	o.touch(now)

	return newStatusTransition(o.id, &previous, target, strings.TrimSpace(notes), actor, riderID, now), nil
}

// Changes lists the fields an edit wants to set; nil means "leave as is".
type Changes struct {
	DeliveryAddress *string
	DeliveryLat     *string
	DeliveryLng     *string
	PaymentMethod   *PaymentMethod
	Notes           *string
}

// Edit applies non-status changes and returns one FieldEdit per field whose
// value actually changed, in the order address, lat, lng, payment, notes.
//
// Business rules:
//   - orders in a terminal status cannot be edited (ErrOrderIsFinal)
//   - the delivery address cannot be blanked
//   - notes may be cleared by supplying an empty string
//   - an edit that changes nothing fails with ErrNothingToEdit
//   - nothing is modified when an error is returned
func (o *Order) Edit(changes Changes, actor Actor, reason string, now time.Time) ([]FieldEdit, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.status.IsTerminal() {
		return nil, ErrOrderIsFinal
	}

	if changes.DeliveryAddress != nil && strings.TrimSpace(*changes.DeliveryAddress) == "" {
		return nil, errs.NewValueIsRequiredError("deliveryAddress")
	}
	if changes.PaymentMethod != nil {
		if err := changes.PaymentMethod.Validate(); err != nil {
			return nil, err
		}
	}

	reason = strings.TrimSpace(reason)
	var edits []FieldEdit
	record := func(field Field, oldValue, newValue *string) {
		edits = append(edits, newFieldEdit(o.id, field, oldValue, newValue, reason, actor, now))
	}

	if v := changes.DeliveryAddress; v != nil && strings.TrimSpace(*v) != o.deliveryAddress {
		addr := strings.TrimSpace(*v)
		record(FieldDeliveryAddress, stringPtr(o.deliveryAddress), stringPtr(addr))
		o.deliveryAddress = addr
	}
	if v := changes.DeliveryLat; v != nil && !equalOptional(o.deliveryLat, v) {
		record(FieldDeliveryLat, copyString(o.deliveryLat), copyString(v))
		o.deliveryLat = copyString(v)
	}
	if v := changes.DeliveryLng; v != nil && !equalOptional(o.deliveryLng, v) {
		record(FieldDeliveryLng, copyString(o.deliveryLng), copyString(v))
		o.deliveryLng = copyString(v)
	}
	if v := changes.PaymentMethod; v != nil && *v != o.paymentMethod {
		record(FieldPaymentMethod, stringPtr(string(o.paymentMethod)), stringPtr(string(*v)))
		o.paymentMethod = *v
	}
	if v := changes.Notes; v != nil && *v != o.notes {
		record(FieldNotes, optionalString(o.notes), optionalString(*v))
		o.notes = *v
	}

	if len(edits) == 0 {
		return nil, ErrNothingToEdit
	}

	o.touch(now)
	return edits, nil
}

func (o *Order) touch(now time.Time) {
	o.updatedAt = now.UTC()
	o.version++
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is not a positive id", id))
	}
	o.customerID = id
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = strings.TrimSpace(address)
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

func stringPtr(s string) *string { return &s }

// optionalString maps "" to nil, matching how cleared notes are stored.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
