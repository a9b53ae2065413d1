package rider

import (
	"errors"
	"fmt"
	"strings"

	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"
)

const (
	minRating = 0
	maxRating = 50
)

var (
	// ErrRiderIsNotConstructed is returned when using a Rider that was not built
	// via RestoreRider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via RestoreRider constructor")

	// ErrRiderIsNotAvailable is returned when assigning a rider that is not approved.
	ErrRiderIsNotAvailable = errors.New("rider is not available for assignment")
)

// Status is the back office approval state of a rider.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusSuspended Status = "suspended"
)

// Validate reports whether s is one of the known approval states.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusSuspended:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("riderStatus", fmt.Errorf("%q is not a valid rider status", string(s)))
}

// Rider is a courier that can carry orders.
//
// Riders are created and approved outside the order workflow, so the package
// only offers RestoreRider to rebuild one from storage.
//
// Example:
//
//	r, err := rider.RestoreRider(12, "Jean Mbarga", "+237670000000", 47, 310, rider.StatusApproved)
//	if err != nil {
//	    return err
//	}
//	if err := r.ValidateAssignable(); err != nil {
//	    // rider cannot take the order
//	}
type Rider struct {
	id                  int64
	name                string
	phone               string
	rating              int
	completedDeliveries int
	status              Status

	guard guard.ConstructorGuard
}

// RestoreRider rebuilds a rider from persisted data.
func RestoreRider(id int64, name, phone string, rating, completedDeliveries int, status Status) (*Rider, error) {
	r := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setPhone(phone),
		r.setRating(rating),
		r.setCompletedDeliveries(completedDeliveries),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the rider was built via RestoreRider.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

func (r *Rider) ID() int64 { return r.id }

func (r *Rider) Name() string { return r.name }

func (r *Rider) Phone() string { return r.phone }

// Rating is the average customer rating times ten.
func (r *Rider) Rating() int { return r.rating }

func (r *Rider) CompletedDeliveries() int { return r.completedDeliveries }

func (r *Rider) Status() Status { return r.status }

// IsAvailable reports whether the rider may be assigned to an order.
func (r *Rider) IsAvailable() bool {
	return r.status == StatusApproved
}

// ValidateAssignable returns ErrRiderIsNotAvailable unless the rider is approved.
func (r *Rider) ValidateAssignable() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsAvailable() {
		return fmt.Errorf("%w: rider %d is %s", ErrRiderIsNotAvailable, r.id, r.status)
	}
	return nil
}

func (r *Rider) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive id", id))
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rider) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}

func (r *Rider) setRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	r.rating = rating
	return nil
}

func (r *Rider) setCompletedDeliveries(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("completedDeliveries", n, 0, "unbounded")
	}
	r.completedDeliveries = n
	return nil
}

func (r *Rider) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.status = s
	return nil
}
