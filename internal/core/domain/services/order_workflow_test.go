package services_test

import (
	"testing"
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"
	"okada/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	admin = order.Actor{Type: order.ActorAdmin, ID: 1}
)

func restoreOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	fee, err := kernel.NewMoney(50000)
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Snapshot{
		ID:              501,
		Number:          "OKD-501",
		CustomerID:      9,
		Status:          status,
		DeliveryAddress: "Carrefour Bastos, Yaoundé",
		PaymentMethod:   order.PaymentCash,
		PaymentStatus:   order.PaymentPending,
		DeliveryFee:     fee,
		Total:           fee,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	})
	require.NoError(t, err)
	return o
}

func restoreRider(t *testing.T, id int64, status rider.Status) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(id, "Paul Etoa", "+237650000000", 45, 120, status)
	require.NoError(t, err)
	return r
}

func TestOrderWorkflow_Transition(t *testing.T) {
	wf := services.NewOrderWorkflow()

	t.Run("should assign an approved rider", func(t *testing.T) {
		o := restoreOrder(t, order.Confirmed)

		record, err := wf.Transition(o, order.RiderAssigned, restoreRider(t, 8, rider.StatusApproved), admin, "", now)

		require.NoError(t, err)
		assert.Equal(t, order.RiderAssigned, o.Status())
		require.NotNil(t, o.RiderID())
		assert.Equal(t, int64(8), *o.RiderID())
		assert.Equal(t, int64(8), *record.RiderID())
	})

	t.Run("should refuse a suspended rider", func(t *testing.T) {
		o := restoreOrder(t, order.Confirmed)

		_, err := wf.Transition(o, order.RiderAssigned, restoreRider(t, 8, rider.StatusSuspended), admin, "", now)

		require.ErrorIs(t, err, rider.ErrRiderIsNotAvailable)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.RiderID())
	})

	t.Run("should require a rider for rider_assigned", func(t *testing.T) {
		o := restoreOrder(t, order.Confirmed)

		_, err := wf.Transition(o, order.RiderAssigned, nil, admin, "", now)

		require.ErrorIs(t, err, order.ErrRiderIsRequired)
	})

	t.Run("should refuse a rider for other targets", func(t *testing.T) {
		o := restoreOrder(t, order.Pending)

		_, err := wf.Transition(o, order.Confirmed, restoreRider(t, 8, rider.StatusApproved), admin, "", now)

		require.ErrorIs(t, err, order.ErrRiderIsNotExpected)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse an illegal transition", func(t *testing.T) {
		o := restoreOrder(t, order.QualityVerification)

		_, err := wf.Transition(o, order.Cancelled, nil, admin, "", now)

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		assert.Equal(t, order.QualityVerification, o.Status())
	})

	t.Run("should refuse an unconstructed order", func(t *testing.T) {
		_, err := wf.Transition(&order.Order{}, order.Confirmed, nil, admin, "", now)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrderWorkflow_ValidateRider(t *testing.T) {
	wf := services.NewOrderWorkflow()

	require.NoError(t, wf.ValidateRider(8, restoreRider(t, 8, rider.StatusApproved)))
	require.ErrorIs(t, wf.ValidateRider(9, restoreRider(t, 8, rider.StatusApproved)), services.ErrRiderMismatch)
	require.ErrorIs(t, wf.ValidateRider(9, nil), rider.ErrRiderIsNotConstructed)
}
