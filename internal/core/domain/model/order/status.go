package order

import (
	"errors"
	"fmt"

	"okada/internal/pkg/errs"
)

var (
	// ErrTransitionNotAllowed is returned when the target status is not a legal
	// successor of the current one.
	ErrTransitionNotAllowed = errors.New("status transition is not allowed")

	// ErrStatusIsFinal is returned for any transition out of a terminal status.
	ErrStatusIsFinal = errors.New("status is final")
)

// Status is the lifecycle state of an order.
//
// The happy path, as returned by HappyPath and drawn on the timeline:
//
//	pending -> confirmed -> rider_assigned -> in_transit -> quality_verification -> delivered
//
// Other legal transitions:
//
//	in_transit -> delivered
//	quality_verification -> waiting_approval | rejected
//	waiting_approval -> delivered | rejected
//	pending | confirmed | rider_assigned | in_transit -> cancelled
//
// waiting_approval is reachable but off the happy path.
//
// delivered, cancelled and rejected are terminal. The graph has no cycles.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Pending
	Confirmed
	RiderAssigned
	InTransit
	QualityVerification
	WaitingApproval
	Delivered
	Cancelled
	Rejected
)

// transitions is the single source of truth for the workflow. A status missing
// from the map (or mapped to an empty row) has no successors.
//
//nolint:gochecknoglobals // read-only table, copied out by NextStatuses
var transitions = map[Status][]Status{
	Pending:             {Confirmed, Cancelled},
	Confirmed:           {RiderAssigned, Cancelled},
	RiderAssigned:       {InTransit, Cancelled},
	InTransit:           {QualityVerification, Delivered, Cancelled},
	QualityVerification: {WaitingApproval, Delivered, Rejected},
	WaitingApproval:     {Delivered, Rejected},
	Delivered:           {},
	Cancelled:           {},
	Rejected:            {},
}

//nolint:gochecknoglobals // read-only lookup table
var statusNames = map[Status]string{
	Pending:             "pending",
	Confirmed:           "confirmed",
	RiderAssigned:       "rider_assigned",
	InTransit:           "in_transit",
	QualityVerification: "quality_verification",
	WaitingApproval:     "waiting_approval",
	Delivered:           "delivered",
	Cancelled:           "cancelled",
	Rejected:            "rejected",
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{
		Pending,
		Confirmed,
		RiderAssigned,
		InTransit,
		QualityVerification,
		WaitingApproval,
		Delivered,
		Cancelled,
		Rejected,
	}
}

// ParseStatus converts the wire/database name ("rider_assigned") into a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// NextStatuses returns the legal successors of s. The result is a fresh slice;
// it is empty for terminal and invalid statuses.
func (s Status) NextStatuses() []Status {
	row := transitions[s]
	next := make([]Status, len(row))
	copy(next, row)
	return next
}

// NextStatuses is the function form of Status.NextStatuses.
func NextStatuses(current Status) []Status {
	return current.NextStatuses()
}

// IsTerminal reports whether s accepts no further transition.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// RequiresRider reports whether moving into s needs a rider to be supplied.
func (s Status) RequiresRider() bool {
	return s == RiderAssigned
}

// CanTransitionTo reports whether target is a legal successor of s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ValidateTransition returns nil when s -> target is legal.
//
// Every rejection wraps ErrTransitionNotAllowed inside an errs.ValueIsInvalidError;
// rejections out of a terminal status also wrap ErrStatusIsFinal.
func (s Status) ValidateTransition(target Status) error {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: %w: %s has no further transitions", ErrTransitionNotAllowed, ErrStatusIsFinal, s),
		)
	}
	if !s.CanTransitionTo(target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, s, target),
		)
	}
	return nil
}
