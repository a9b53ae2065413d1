package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Order struct {
	Id              int64     `json:"id"`
	OrderNumber     string    `json:"orderNumber"`
	CustomerId      int64     `json:"customerId"`
	RiderId         *int64    `json:"riderId,omitempty"`
	RiderName       *string   `json:"riderName,omitempty"`
	Status          string    `json:"status"`
	DeliveryAddress string    `json:"deliveryAddress"`
	DeliveryLat     *string   `json:"deliveryLat,omitempty"`
	DeliveryLng     *string   `json:"deliveryLng,omitempty"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentStatus   string    `json:"paymentStatus"`
	Subtotal        int64     `json:"subtotal"`
	DeliveryFee     int64     `json:"deliveryFee"`
	Total           int64     `json:"total"`
	Notes           *string   `json:"notes,omitempty"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type OrderItem struct {
	Id          int64  `json:"id"`
	ProductId   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	Total       int64  `json:"total"`
}

type QualityPhoto struct {
	Id              int64     `json:"id"`
	PhotoUrl        string    `json:"photoUrl"`
	ApprovalStatus  string    `json:"approvalStatus"`
	RejectionReason *string   `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type OrderDetails struct {
	Order        Order          `json:"order"`
	Items        []OrderItem    `json:"items"`
	Photos       []QualityPhoto `json:"photos"`
	NextStatuses []string       `json:"nextStatuses"`
}

type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

type StatusTransition struct {
	Id             openapi_types.UUID `json:"id"`
	OrderId        int64              `json:"orderId"`
	PreviousStatus *string            `json:"previousStatus,omitempty"`
	NewStatus      string             `json:"newStatus"`
	Notes          *string            `json:"notes,omitempty"`
	ChangedBy      int64              `json:"changedBy"`
	ChangedByType  string             `json:"changedByType"`
	RiderId        *int64             `json:"riderId,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type FieldEdit struct {
	Id           openapi_types.UUID `json:"id"`
	OrderId      int64              `json:"orderId"`
	FieldChanged string             `json:"fieldChanged"`
	OldValue     *string            `json:"oldValue,omitempty"`
	NewValue     *string            `json:"newValue,omitempty"`
	Reason       *string            `json:"reason,omitempty"`
	EditedBy     int64              `json:"editedBy"`
	EditedByType string             `json:"editedByType"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type Rider struct {
	Id                  int64  `json:"id"`
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Rating              int    `json:"rating"`
	CompletedDeliveries int    `json:"completedDeliveries"`
}

type NextStatuses struct {
	Current  string   `json:"current"`
	Next     []string `json:"next"`
	Terminal bool     `json:"terminal"`
}

type ChangeStatusRequest struct {
	Status          string  `json:"status" validate:"required"`
	RiderId         *int64  `json:"riderId,omitempty" validate:"omitempty,min=1"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	ExpectedVersion *int64  `json:"expectedVersion,omitempty" validate:"omitempty,min=1"`
}

type BulkStatusRequest struct {
	OrderIds []int64 `json:"orderIds" validate:"required,min=1,max=100,dive,min=1"`
	Status   string  `json:"status" validate:"required"`
	RiderId  *int64  `json:"riderId,omitempty" validate:"omitempty,min=1"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type BulkFailure struct {
	OrderId int64  `json:"orderId"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type BulkStatusResult struct {
	Succeeded []StatusTransition `json:"succeeded"`
	Failed    []BulkFailure      `json:"failed"`
}

type EditOrderRequest struct {
	DeliveryAddress *string `json:"deliveryAddress,omitempty" validate:"omitempty,min=1,max=500"`
	DeliveryLat     *string `json:"deliveryLat,omitempty" validate:"omitempty,max=32"`
	DeliveryLng     *string `json:"deliveryLng,omitempty" validate:"omitempty,max=32"`
	PaymentMethod   *string `json:"paymentMethod,omitempty" validate:"omitempty,oneof=mtn_money orange_money cash"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	Reason          *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	ExpectedVersion *int64  `json:"expectedVersion,omitempty" validate:"omitempty,min=1"`
}

// ListOrdersParams are the query parameters of ListOrders.
type ListOrdersParams struct {
	Search *string `form:"search,omitempty" json:"search,omitempty"`
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int    `form:"offset,omitempty" json:"offset,omitempty"`
}
