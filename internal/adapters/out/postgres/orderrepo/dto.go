// Package orderrepo maps the Order aggregate to the orders, order_items and
// quality_photos tables.
package orderrepo

import (
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. Items and Photos are loaded with
// the order but never written: both are owned by other services.
type OrderDTO struct {
	ID              int64   `gorm:"primaryKey"`
	OrderNumber     string  `gorm:"column:order_number"`
	CustomerID      int64   `gorm:"column:customer_id"`
	RiderID         *int64  `gorm:"column:rider_id"`
	Status          string  `gorm:"column:status"`
	DeliveryAddress string  `gorm:"column:delivery_address"`
	DeliveryLat     *string `gorm:"column:delivery_lat"`
	DeliveryLng     *string `gorm:"column:delivery_lng"`
	PaymentMethod   string  `gorm:"column:payment_method"`
	PaymentStatus   string  `gorm:"column:payment_status"`
	Subtotal        int64
	DeliveryFee     int64
	Total           int64
	Notes           *string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false"`

	Items  []ItemDTO         `gorm:"foreignKey:OrderID"`
	Photos []QualityPhotoDTO `gorm:"foreignKey:OrderID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   int64
	Total       int64
}

func (ItemDTO) TableName() string {
	return "order_items"
}

type QualityPhotoDTO struct {
	ID              int64 `gorm:"primaryKey"`
	OrderID         int64
	PhotoURL        string `gorm:"column:photo_url"`
	UploadedBy      int64
	ApprovalStatus  string
	RejectionReason *string
	CreatedAt       time.Time
}

func (QualityPhotoDTO) TableName() string {
	return "quality_photos"
}

// updatableColumns are the columns the workflow may change.
var updatableColumns = []string{
	"rider_id",
	"status",
	"delivery_address",
	"delivery_lat",
	"delivery_lng",
	"payment_method",
	"notes",
	"version",
	"updated_at",
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              o.ID(),
		OrderNumber:     o.Number(),
		CustomerID:      o.CustomerID(),
		RiderID:         o.RiderID(),
		Status:          o.Status().String(),
		DeliveryAddress: o.DeliveryAddress(),
		DeliveryLat:     o.DeliveryLat(),
		DeliveryLng:     o.DeliveryLng(),
		PaymentMethod:   string(o.PaymentMethod()),
		PaymentStatus:   string(o.PaymentStatus()),
		Subtotal:        o.Subtotal().Minor(),
		DeliveryFee:     o.DeliveryFee().Minor(),
		Total:           o.Total().Minor(),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
	if notes := o.Notes(); notes != "" {
		dto.Notes = &notes
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		unit, unitErr := kernel.NewMoney(it.UnitPrice)
		if unitErr != nil {
			return nil, unitErr
		}
		lineTotal, totalErr := kernel.NewMoney(it.Total)
		if totalErr != nil {
			return nil, totalErr
		}
		items = append(items, order.Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   unit,
			Total:       lineTotal,
		})
	}

	photos := make([]order.QualityPhoto, 0, len(dto.Photos))
	for _, p := range dto.Photos {
		approval := order.PhotoApproval(p.ApprovalStatus)
		if err = approval.Validate(); err != nil {
			return nil, err
		}
		photo := order.QualityPhoto{
			ID:         p.ID,
			URL:        p.PhotoURL,
			UploadedBy: p.UploadedBy,
			Approval:   approval,
		}
		if p.RejectionReason != nil {
			photo.RejectionReason = *p.RejectionReason
		}
		photos = append(photos, photo)
	}

	var notes string
	if dto.Notes != nil {
		notes = *dto.Notes
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              dto.ID,
		Number:          dto.OrderNumber,
		CustomerID:      dto.CustomerID,
		Status:          status,
		RiderID:         dto.RiderID,
		DeliveryAddress: dto.DeliveryAddress,
		DeliveryLat:     dto.DeliveryLat,
		DeliveryLng:     dto.DeliveryLng,
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:   order.PaymentStatus(dto.PaymentStatus),
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           total,
		Notes:           notes,
		CreatedAt:       dto.CreatedAt.UTC(),
		UpdatedAt:       dto.UpdatedAt.UTC(),
		Version:         dto.Version,
		Items:           items,
		Photos:          photos,
	})
}
