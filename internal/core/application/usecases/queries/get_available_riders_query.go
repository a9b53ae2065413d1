package queries

import (
	"context"
	"errors"

	"okada/internal/core/domain/model/rider"
	"okada/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAvailableRidersQueryIsNotConstructed = errors.New(
	"GetAvailableRidersQuery must be created via NewGetAvailableRidersQuery constructor",
)

// GetAvailableRidersQuery lists riders that can be assigned to an order.
type GetAvailableRidersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableRidersQuery() GetAvailableRidersQuery {
	return GetAvailableRidersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRidersQueryIsNotConstructed)
}

type RiderResponse struct {
	ID                  int64
	Name                string
	Phone               string
	Rating              int
	CompletedDeliveries int
	Status              rider.Status
}

type GetAvailableRidersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableRidersQueryHandler(db *gorm.DB) GetAvailableRidersQueryHandler {
	return GetAvailableRidersQueryHandler{db: db}
}

// Handle returns approved riders, best rated first.
func (h GetAvailableRidersQueryHandler) Handle(ctx context.Context, query GetAvailableRidersQuery) ([]RiderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, rating, completed_deliveries, status
		FROM riders
		WHERE status = ?
		ORDER BY rating DESC, completed_deliveries DESC, id
	`, string(rider.StatusApproved)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]RiderResponse, 0)
	for rows.Next() {
		var (
			r      RiderResponse
			status string
		)
		if err = rows.Scan(&r.ID, &r.Name, &r.Phone, &r.Rating, &r.CompletedDeliveries, &status); err != nil {
			return nil, err
		}
		r.Status = rider.Status(status)
		riders = append(riders, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return riders, nil
}
