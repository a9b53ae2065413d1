// Package workflow drives the order status dialog of the admin dashboard
// against a remote order service.
//
// A Dialog is opened for one order. It exposes the legal next statuses,
// refuses illegal or incomplete transitions locally before any request is
// made, sends confirmed transitions and edits, and reloads the order and its
// histories after every successful change. A failed request leaves the
// loaded state untouched and is reported through Dialog.LastError.
package workflow

import (
	"context"

	"okada/internal/adapters/in/http/api"
)

// StatusUpdate is the body of a transition request.
type StatusUpdate struct {
	OrderID         int64
	Status          string
	RiderID         *int64
	Notes           *string
	ExpectedVersion *int64
}

// OrderUpdate is the body of an edit request. Nil fields are left as is.
type OrderUpdate struct {
	OrderID         int64
	DeliveryAddress *string
	DeliveryLat     *string
	DeliveryLng     *string
	PaymentMethod   *string
	Notes           *string
	Reason          *string
	ExpectedVersion *int64
}

func (u OrderUpdate) isEmpty() bool {
	return u.DeliveryAddress == nil && u.DeliveryLat == nil && u.DeliveryLng == nil &&
		u.PaymentMethod == nil && u.Notes == nil
}

// ListParams filters ListOrders. Zero values mean "no filter" and the server
// default page size.
type ListParams struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// OrderService is the remote order API.
type OrderService interface {
	GetOrder(ctx context.Context, orderID int64) (api.OrderDetails, error)
	GetStatusHistory(ctx context.Context, orderID int64) ([]api.StatusTransition, error)
	GetEditHistory(ctx context.Context, orderID int64) ([]api.FieldEdit, error)
	GetAvailableRiders(ctx context.Context) ([]api.Rider, error)
	UpdateStatus(ctx context.Context, update StatusUpdate) (api.StatusTransition, error)
	UpdateOrder(ctx context.Context, update OrderUpdate) ([]api.FieldEdit, error)
	ListOrders(ctx context.Context, params ListParams) (api.OrderPage, error)
	GetNextStatuses(ctx context.Context, status string) (api.NextStatuses, error)
}
