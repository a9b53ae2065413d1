package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"
	"okada/internal/pkg/guard"

	"gorm.io/gorm"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first. Search matches the order
// number or the delivery address, case-insensitively.
//
// Example:
//
//	status := order.InTransit
//	query, err := NewListOrdersQuery("bonapriso", &status, 20, 0)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct {
	search string
	status *order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery applies DefaultListLimit when limit is zero.
func NewListOrdersQuery(search string, status *order.Status, limit, offset int) (ListOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}

	var err error
	if limit < 1 || limit > MaxListLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if offset < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("offset", fmt.Errorf("%d is negative", offset)))
	}
	if status != nil {
		err = errors.Join(err, status.Validate())
	}
	if err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{
		search: strings.TrimSpace(search),
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}
	if status != nil {
		s := *status
		q.status = &s
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Limit() int { return q.limit }

func (q ListOrdersQuery) Offset() int { return q.offset }

type ListOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where, args := query.filter()
	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders o WHERE `+where, args...).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN riders r ON r.id = o.rider_id
		WHERE `+where+`
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, append(args, query.limit, query.offset)...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.limit)
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	return ListOrdersQueryResponse{Orders: orders, Total: total}, nil
}

func (q ListOrdersQuery) filter() (string, []any) {
	clauses := []string{"TRUE"}
	var args []any

	if q.search != "" {
		pattern := "%" + escapeLike(q.search) + "%"
		clauses = append(clauses, "(o.order_number ILIKE ? OR o.delivery_address ILIKE ?)")
		args = append(args, pattern, pattern)
	}
	if q.status != nil {
		clauses = append(clauses, "o.status = ?")
		args = append(args, q.status.String())
	}
	return strings.Join(clauses, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
