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

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery lists the status transitions of an order, oldest first.
type GetStatusHistoryQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetStatusHistoryQuery(orderID int64) (GetStatusHistoryQuery, error) {
	if orderID <= 0 {
		return GetStatusHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a positive id", orderID))
	}
	return GetStatusHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

func (q GetStatusHistoryQuery) OrderID() int64 { return q.orderID }

// StatusHistoryEntry is one row of the status history. PreviousStatus is nil
// for the record written when the order was placed.
type StatusHistoryEntry struct {
	ID             uuid.UUID
	OrderID        int64
	PreviousStatus *order.Status
	NewStatus      order.Status
	Notes          *string
	ChangedBy      int64
	ChangedByType  order.ActorType
	RiderID        *int64
	CreatedAt      time.Time
}

// GetStatusHistoryQueryHandler reads the history through the same store the
// command side appends to, so entries come back as validated domain records.
type GetStatusHistoryQueryHandler struct {
	history ports.StatusHistoryReader
}

func NewGetStatusHistoryQueryHandler(history ports.StatusHistoryReader) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{history: history}
}

// Handle returns an empty slice for an order without history.
func (h GetStatusHistoryQueryHandler) Handle(ctx context.Context, query GetStatusHistoryQuery) ([]StatusHistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.history.ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	history := make([]StatusHistoryEntry, 0, len(records))
	for _, rec := range records {
		history = append(history, StatusHistoryEntry{
			ID:             rec.ID().Bytes(),
			OrderID:        rec.OrderID(),
			PreviousStatus: rec.PreviousStatus(),
			NewStatus:      rec.NewStatus(),
			Notes:          optionalString(rec.Notes()),
			ChangedBy:      rec.Actor().ID,
			ChangedByType:  rec.Actor().Type,
			RiderID:        rec.RiderID(),
			CreatedAt:      rec.CreatedAt().UTC(),
		})
	}
	return history, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
