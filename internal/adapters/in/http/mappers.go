package http

import (
	"okada/internal/adapters/in/http/api"
	"okada/internal/core/application/usecases/queries"
	"okada/internal/core/domain/model/order"
)

func toAPIOrder(o queries.OrderResponse) api.Order {
	return api.Order{
		Id:              o.ID,
		OrderNumber:     o.OrderNumber,
		CustomerId:      o.CustomerID,
		RiderId:         o.RiderID,
		RiderName:       o.RiderName,
		Status:          o.Status.String(),
		DeliveryAddress: o.DeliveryAddress,
		DeliveryLat:     o.DeliveryLat,
		DeliveryLng:     o.DeliveryLng,
		PaymentMethod:   string(o.PaymentMethod),
		PaymentStatus:   string(o.PaymentStatus),
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Total:           o.Total,
		Notes:           o.Notes,
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toAPIOrderDetails(d queries.GetOrderQueryResponse) api.OrderDetails {
	details := api.OrderDetails{
		Order:        toAPIOrder(d.OrderResponse),
		Items:        make([]api.OrderItem, len(d.Items)),
		Photos:       make([]api.QualityPhoto, len(d.Photos)),
		NextStatuses: statusNames(d.NextStatuses),
	}
	for i, it := range d.Items {
		details.Items[i] = api.OrderItem{
			Id:          it.ID,
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	for i, p := range d.Photos {
		details.Photos[i] = api.QualityPhoto{
			Id:              p.ID,
			PhotoUrl:        p.PhotoURL,
			ApprovalStatus:  string(p.ApprovalStatus),
			RejectionReason: p.RejectionReason,
			CreatedAt:       p.CreatedAt,
		}
	}
	return details
}

func toAPIStatusTransition(e queries.StatusHistoryEntry) api.StatusTransition {
	t := api.StatusTransition{
		Id:            e.ID,
		OrderId:       e.OrderID,
		NewStatus:     e.NewStatus.String(),
		Notes:         e.Notes,
		ChangedBy:     e.ChangedBy,
		ChangedByType: string(e.ChangedByType),
		RiderId:       e.RiderID,
		CreatedAt:     e.CreatedAt,
	}
	if e.PreviousStatus != nil {
		previous := e.PreviousStatus.String()
		t.PreviousStatus = &previous
	}
	return t
}

func statusTransitionFromDomain(tr order.StatusTransition) api.StatusTransition {
	t := api.StatusTransition{
		Id:            tr.ID().Bytes(),
		OrderId:       tr.OrderID(),
		NewStatus:     tr.NewStatus().String(),
		Notes:         optional(tr.Notes()),
		ChangedBy:     tr.Actor().ID,
		ChangedByType: string(tr.Actor().Type),
		RiderId:       tr.RiderID(),
		CreatedAt:     tr.CreatedAt(),
	}
	if previous := tr.PreviousStatus(); previous != nil {
		name := previous.String()
		t.PreviousStatus = &name
	}
	return t
}

func toAPIFieldEdit(e queries.EditHistoryEntry) api.FieldEdit {
	return api.FieldEdit{
		Id:           e.ID,
		OrderId:      e.OrderID,
		FieldChanged: string(e.FieldChanged),
		OldValue:     e.OldValue,
		NewValue:     e.NewValue,
		Reason:       e.Reason,
		EditedBy:     e.EditedBy,
		EditedByType: string(e.EditedByType),
		CreatedAt:    e.CreatedAt,
	}
}

func fieldEditFromDomain(e order.FieldEdit) api.FieldEdit {
	return api.FieldEdit{
		Id:           e.ID().Bytes(),
		OrderId:      e.OrderID(),
		FieldChanged: string(e.Field()),
		OldValue:     e.OldValue(),
		NewValue:     e.NewValue(),
		Reason:       optional(e.Reason()),
		EditedBy:     e.Actor().ID,
		EditedByType: string(e.Actor().Type),
		CreatedAt:    e.CreatedAt(),
	}
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return names
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
