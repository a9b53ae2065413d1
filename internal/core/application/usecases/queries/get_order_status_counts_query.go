package queries

import (
	"context"
	"errors"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderStatusCountsQueryIsNotConstructed = errors.New(
	"GetOrderStatusCountsQuery must be created via NewGetOrderStatusCountsQuery constructor",
)

// GetOrderStatusCountsQuery counts orders per status.
type GetOrderStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderStatusCountsQuery() GetOrderStatusCountsQuery {
	return GetOrderStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusCountsQueryIsNotConstructed)
}

type GetOrderStatusCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusCountsQueryHandler(db *gorm.DB) GetOrderStatusCountsQueryHandler {
	return GetOrderStatusCountsQueryHandler{db: db}
}

// Handle returns a count for every defined status, zero included.
func (h GetOrderStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusCountsQuery,
) (map[order.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64, len(order.AllStatuses()))
	for _, s := range order.AllStatuses() {
		counts[s] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			count int64
		)
		if err = rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		s, parseErr := order.ParseStatus(name)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[s] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
