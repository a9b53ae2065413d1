package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"okada/internal/core/domain/model/order"
	"okada/internal/core/ports"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetEditHistoryQueryIsNotConstructed = errors.New(
	"GetEditHistoryQuery must be created via NewGetEditHistoryQuery constructor",
)

// GetEditHistoryQuery lists the field edits of an order, oldest first.
type GetEditHistoryQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetEditHistoryQuery(orderID int64) (GetEditHistoryQuery, error) {
	if orderID <= 0 {
		return GetEditHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a positive id", orderID))
	}
	return GetEditHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEditHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetEditHistoryQueryIsNotConstructed)
}

func (q GetEditHistoryQuery) OrderID() int64 { return q.orderID }

type EditHistoryEntry struct {
	ID           uuid.UUID
	OrderID      int64
	FieldChanged order.Field
	OldValue     *string
	NewValue     *string
	Reason       *string
	EditedBy     int64
	EditedByType order.ActorType
	CreatedAt    time.Time
}

type GetEditHistoryQueryHandler struct {
	history ports.EditHistoryReader
}

func NewGetEditHistoryQueryHandler(history ports.EditHistoryReader) GetEditHistoryQueryHandler {
	return GetEditHistoryQueryHandler{history: history}
}

func (h GetEditHistoryQueryHandler) Handle(ctx context.Context, query GetEditHistoryQuery) ([]EditHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	edits, err := h.history.ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	history := make([]EditHistoryEntry, 0, len(edits))
	for _, e := range edits {
		history = append(history, EditHistoryEntry{
			ID:           e.ID().Bytes(),
			OrderID:      e.OrderID(),
			FieldChanged: e.Field(),
			OldValue:     e.OldValue(),
			NewValue:     e.NewValue(),
			Reason:       optionalString(e.Reason()),
			EditedBy:     e.Actor().ID,
			EditedByType: e.Actor().Type,
			CreatedAt:    e.CreatedAt().UTC(),
		})
	}
	return history, nil
}
