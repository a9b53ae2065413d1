package ports

import (
	"context"

	"okada/internal/core/domain/model/order"
)

// StatusHistoryRepository is the append-only store of status transitions.
// It is used inside a unit of work, next to the order it describes.
type StatusHistoryRepository interface {
	Append(ctx context.Context, records ...order.StatusTransition) error
}

// EditHistoryRepository is the append-only store of field edits.
type EditHistoryRepository interface {
	Append(ctx context.Context, edits ...order.FieldEdit) error
}

// StatusHistoryReader lists the status transitions of one order, oldest first.
// An order without history yields an empty slice, not an error.
type StatusHistoryReader interface {
	ListByOrder(ctx context.Context, orderID int64) ([]order.StatusTransition, error)
}

// EditHistoryReader lists the field edits of one order, oldest first.
type EditHistoryReader interface {
	ListByOrder(ctx context.Context, orderID int64) ([]order.FieldEdit, error)
}
