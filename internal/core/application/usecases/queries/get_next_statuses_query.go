package queries

import (
	"errors"

	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/guard"
)

var ErrGetNextStatusesQueryIsNotConstructed = errors.New(
	"GetNextStatusesQuery must be created via NewGetNextStatusesQuery constructor",
)

// GetNextStatusesQuery asks which statuses may follow a given one. It is
// answered from the transition table alone.
type GetNextStatusesQuery struct {
	current order.Status

	guard guard.ConstructorGuard
}

func NewGetNextStatusesQuery(current order.Status) (GetNextStatusesQuery, error) {
	if err := current.Validate(); err != nil {
		return GetNextStatusesQuery{}, err
	}
	return GetNextStatusesQuery{current: current, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNextStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetNextStatusesQueryIsNotConstructed)
}

type GetNextStatusesQueryResponse struct {
	Current  order.Status
	Next     []order.Status
	Terminal bool
}

type GetNextStatusesQueryHandler struct{}

func NewGetNextStatusesQueryHandler() GetNextStatusesQueryHandler {
	return GetNextStatusesQueryHandler{}
}

// Handle returns an empty Next with Terminal set for final statuses.
func (GetNextStatusesQueryHandler) Handle(query GetNextStatusesQuery) (GetNextStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextStatusesQueryResponse{}, err
	}
	return GetNextStatusesQueryResponse{
		Current:  query.current,
		Next:     order.NextStatuses(query.current),
		Terminal: query.current.IsTerminal(),
	}, nil
}
