package order

import (
	"fmt"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/pkg/errs"
)

// Item is an order line. Items are owned by the fulfillment subsystem and are
// read-only for the status workflow.
type Item struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Total       kernel.Money
}

// PhotoApproval is the review outcome of a delivery verification photo.
type PhotoApproval string

const (
	PhotoPending  PhotoApproval = "pending"
	PhotoApproved PhotoApproval = "approved"
	PhotoRejected PhotoApproval = "rejected"
)

// Validate checks the approval against the known review outcomes.
func (a PhotoApproval) Validate() error {
	switch a {
	case PhotoPending, PhotoApproved, PhotoRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("approvalStatus", fmt.Errorf("%q is not a valid approval status", string(a)))
	}
}

// QualityPhoto is a delivery verification image uploaded by the rider.
// Read-only for the status workflow.
type QualityPhoto struct {
	ID              int64
	URL             string
	UploadedBy      int64
	Approval        PhotoApproval
	RejectionReason string
}
