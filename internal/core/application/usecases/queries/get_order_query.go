package queries

import (
	"errors"
	"fmt"
	"time"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its items, quality photos and the
// statuses it may move to next.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown order
//	}
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a positive id", orderID))
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() int64 { return q.orderID }

// OrderResponse is the header of an order as shown in lists and detail views.
type OrderResponse struct {
	ID              int64
	OrderNumber     string
	CustomerID      int64
	RiderID         *int64
	RiderName       *string
	Status          order.Status
	DeliveryAddress string
	DeliveryLat     *string
	DeliveryLng     *string
	PaymentMethod   order.PaymentMethod
	PaymentStatus   order.PaymentStatus
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	Notes           *string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemResponse struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   int64
	Total       int64
}

type QualityPhotoResponse struct {
	ID              int64
	PhotoURL        string
	ApprovalStatus  order.PhotoApproval
	RejectionReason *string
	CreatedAt       time.Time
}

// GetOrderQueryResponse is the full detail view of an order.
type GetOrderQueryResponse struct {
	OrderResponse
	Items        []OrderItemResponse
	Photos       []QualityPhotoResponse
	NextStatuses []order.Status
}
