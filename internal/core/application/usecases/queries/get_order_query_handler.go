package queries

import (
	"context"
	"database/sql"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"

	"gorm.io/gorm"
)

const orderColumns = `
	o.id,
	o.order_number,
	o.customer_id,
	o.rider_id,
	r.name,
	o.status,
	o.delivery_address,
	o.delivery_lat,
	o.delivery_lng,
	o.payment_method,
	o.payment_status,
	o.subtotal,
	o.delivery_fee,
	o.total,
	o.notes,
	o.version,
	o.created_at,
	o.updated_at`

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN riders r ON r.id = o.rider_id
		WHERE o.id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	header, err := scanOrder(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = rows.Close(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.items(db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	photos, err := h.photos(db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		OrderResponse: header,
		Items:         items,
		Photos:        photos,
		NextStatuses:  order.NextStatuses(header.Status),
	}, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID int64) ([]OrderItemResponse, error) {
	rows, err := db.Raw(`
		SELECT id, product_id, product_name, quantity, unit_price, total
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var it OrderItemResponse
		if err = rows.Scan(&it.ID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (h GetOrderQueryHandler) photos(db *gorm.DB, orderID int64) ([]QualityPhotoResponse, error) {
	rows, err := db.Raw(`
		SELECT id, photo_url, approval_status, rejection_reason, created_at
		FROM quality_photos
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]QualityPhotoResponse, 0)
	for rows.Next() {
		var (
			p        QualityPhotoResponse
			approval string
			reason   sql.NullString
		)
		if err = rows.Scan(&p.ID, &p.PhotoURL, &approval, &reason, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.ApprovalStatus = order.PhotoApproval(approval)
		if err = p.ApprovalStatus.Validate(); err != nil {
			return nil, err
		}
		p.RejectionReason = nullString(reason)
		p.CreatedAt = p.CreatedAt.UTC()
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// scanOrder reads one row selected with orderColumns.
func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var (
		o             OrderResponse
		riderID       sql.NullInt64
		riderName     sql.NullString
		status        string
		lat, lng      sql.NullString
		paymentMethod string
		paymentStatus string
		notes         sql.NullString
	)

	err := rows.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerID,
		&riderID,
		&riderName,
		&status,
		&o.DeliveryAddress,
		&lat,
		&lng,
		&paymentMethod,
		&paymentStatus,
		&o.Subtotal,
		&o.DeliveryFee,
		&o.Total,
		&notes,
		&o.Version,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return OrderResponse{}, err
	}
	o.Status = parsed
	o.PaymentMethod = order.PaymentMethod(paymentMethod)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)
	o.RiderID = nullInt64(riderID)
	o.RiderName = nullString(riderName)
	o.DeliveryLat = nullString(lat)
	o.DeliveryLng = nullString(lng)
	o.Notes = nullString(notes)
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return o, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}
