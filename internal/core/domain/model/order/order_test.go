package order_test

import (
	"testing"
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/core/domain/model/order"
	"okada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	placedAt = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	admin    = order.Actor{Type: order.ActorAdmin, ID: 7}
)

func money(t *testing.T, minor int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(minor)
	require.NoError(t, err)
	return m
}

func newOrderParams(t *testing.T) order.NewOrderParams {
	t.Helper()
	return order.NewOrderParams{
		ID:              1001,
		Number:          "OKD-1001",
		CustomerID:      55,
		DeliveryAddress: "Rue de la Joie, Akwa, Douala",
		PaymentMethod:   order.PaymentMTNMoney,
		Subtotal:        money(t, 250000),
		DeliveryFee:     money(t, 50000),
	}
}

func restoreAt(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.Snapshot{
		ID:              1001,
		Number:          "OKD-1001",
		CustomerID:      55,
		Status:          status,
		DeliveryAddress: "Rue de la Joie, Akwa, Douala",
		PaymentMethod:   order.PaymentCash,
		PaymentStatus:   order.PaymentPending,
		Subtotal:        money(t, 250000),
		DeliveryFee:     money(t, 50000),
		Total:           money(t, 300000),
		Notes:           "ring twice",
		CreatedAt:       placedAt,
		UpdatedAt:       placedAt,
		Version:         3,
	})
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T { return &v }

func TestNewOrder(t *testing.T) {
	t.Run("places a pending order with an initial history record", func(t *testing.T) {
		o, initial, err := order.NewOrder(newOrderParams(t), order.SystemActor(), placedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, int64(300000), o.Total().Minor())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, int64(1), o.Version())
		assert.Nil(t, o.RiderID())

		assert.Nil(t, initial.PreviousStatus())
		assert.Equal(t, order.Pending, initial.NewStatus())
		assert.Equal(t, o.ID(), initial.OrderID())
		assert.Equal(t, order.ActorSystem, initial.Actor().Type)
	})

	t.Run("aggregates every validation failure", func(t *testing.T) {
		_, _, err := order.NewOrder(order.NewOrderParams{}, order.SystemActor(), placedAt)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID: 1, Number: "OKD-1", CustomerID: 1, DeliveryAddress: "x",
			PaymentMethod: order.PaymentCash, PaymentStatus: order.PaymentPaid, Version: 1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non positive version", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID: 1, Number: "OKD-1", CustomerID: 1, Status: order.Pending, DeliveryAddress: "x",
			PaymentMethod: order.PaymentCash, PaymentStatus: order.PaymentPaid,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		var nilOrder *order.Order
		require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	at := placedAt.Add(time.Hour)

	t.Run("pending to confirmed needs no auxiliary data", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		record, err := o.ChangeStatus(order.Confirmed, nil, admin, "  called customer ", at)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		require.NotNil(t, record.PreviousStatus())
		assert.Equal(t, order.Pending, *record.PreviousStatus())
		assert.Equal(t, order.Confirmed, record.NewStatus())
		assert.Equal(t, "called customer", record.Notes())
		assert.Equal(t, admin, record.Actor())
		assert.Equal(t, at, record.CreatedAt())
		assert.Equal(t, int64(4), o.Version())
		assert.Equal(t, at, o.UpdatedAt())
	})

	t.Run("rider_assigned without a rider is blocked", func(t *testing.T) {
		o := restoreAt(t, order.Confirmed)

		_, err := o.ChangeStatus(order.RiderAssigned, nil, admin, "", at)

		require.ErrorIs(t, err, order.ErrRiderIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("rider_assigned with a rider records it", func(t *testing.T) {
		o := restoreAt(t, order.Confirmed)

		record, err := o.ChangeStatus(order.RiderAssigned, ptr(int64(12)), admin, "", at)

		require.NoError(t, err)
		assert.Equal(t, order.RiderAssigned, o.Status())
		require.NotNil(t, o.RiderID())
		assert.Equal(t, int64(12), *o.RiderID())
		require.NotNil(t, record.RiderID())
		assert.Equal(t, int64(12), *record.RiderID())
	})

	t.Run("rider id must be positive", func(t *testing.T) {
		o := restoreAt(t, order.Confirmed)

		_, err := o.ChangeStatus(order.RiderAssigned, ptr(int64(0)), admin, "", at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("a rider is refused for other targets", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		_, err := o.ChangeStatus(order.Confirmed, ptr(int64(12)), admin, "", at)

		require.ErrorIs(t, err, order.ErrRiderIsNotExpected)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("in_transit to delivered records the move", func(t *testing.T) {
		o := restoreAt(t, order.InTransit)

		record, err := o.ChangeStatus(order.Delivered, nil, admin, "", at)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, *record.PreviousStatus())
		assert.Equal(t, order.Delivered, record.NewStatus())
		assert.Empty(t, o.NextStatuses())
	})

	t.Run("illegal target leaves the order untouched", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		_, err := o.ChangeStatus(order.Delivered, nil, admin, "", at)

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, placedAt, o.UpdatedAt())
	})

	t.Run("terminal orders never move", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Rejected} {
			o := restoreAt(t, s)
			for _, target := range order.AllStatuses() {
				_, err := o.ChangeStatus(target, nil, admin, "", at)
				require.Error(t, err)
			}
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("full happy path", func(t *testing.T) {
		o := restoreAt(t, order.Pending)
		steps := []struct {
			target order.Status
			rider  *int64
		}{
			{order.Confirmed, nil},
			{order.RiderAssigned, ptr(int64(3))},
			{order.InTransit, nil},
			{order.QualityVerification, nil},
			{order.WaitingApproval, nil},
			{order.Delivered, nil},
		}

		for i, step := range steps {
			_, err := o.ChangeStatus(step.target, step.rider, admin, "", at.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err, step.target.String())
		}
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, int64(3+len(steps)), o.Version())
	})
}

func TestOrder_Edit(t *testing.T) {
	at := placedAt.Add(2 * time.Hour)

	t.Run("notes only appends one record", func(t *testing.T) {
		o := restoreAt(t, order.Confirmed)

		edits, err := o.Edit(order.Changes{Notes: ptr("leave at the gate")}, admin, "customer call", at)

		require.NoError(t, err)
		require.Len(t, edits, 1)
		assert.Equal(t, order.FieldNotes, edits[0].Field())
		assert.Equal(t, "ring twice", *edits[0].OldValue())
		assert.Equal(t, "leave at the gate", *edits[0].NewValue())
		assert.Equal(t, "customer call", edits[0].Reason())
		assert.Equal(t, "leave at the gate", o.Notes())
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, int64(4), o.Version())
	})

	t.Run("address and notes append two records", func(t *testing.T) {
		o := restoreAt(t, order.InTransit)

		edits, err := o.Edit(order.Changes{
			DeliveryAddress: ptr("Boulevard de la Liberté, Douala"),
			Notes:           ptr("new gate code 1234"),
		}, admin, "", at)

		require.NoError(t, err)
		require.Len(t, edits, 2)
		assert.Equal(t, order.FieldDeliveryAddress, edits[0].Field())
		assert.Equal(t, order.FieldNotes, edits[1].Field())
		assert.Equal(t, "Boulevard de la Liberté, Douala", o.DeliveryAddress())
		assert.Equal(t, int64(4), o.Version(), "one edit bumps the version once")
	})

	t.Run("unchanged values produce no record", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		edits, err := o.Edit(order.Changes{
			DeliveryAddress: ptr("Rue de la Joie, Akwa, Douala"),
			Notes:           ptr("new"),
		}, admin, "", at)

		require.NoError(t, err)
		require.Len(t, edits, 1)
		assert.Equal(t, order.FieldNotes, edits[0].Field())
	})

	t.Run("no change at all is rejected", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		_, err := o.Edit(order.Changes{Notes: ptr("ring twice")}, admin, "", at)

		require.ErrorIs(t, err, order.ErrNothingToEdit)
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("clearing notes stores a nil new value", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		edits, err := o.Edit(order.Changes{Notes: ptr("")}, admin, "", at)

		require.NoError(t, err)
		require.Len(t, edits, 1)
		assert.Nil(t, edits[0].NewValue())
		assert.Empty(t, o.Notes())
	})

	t.Run("payment method and coordinates", func(t *testing.T) {
		o := restoreAt(t, order.Pending)
		method := order.PaymentOrangeMoney

		edits, err := o.Edit(order.Changes{
			DeliveryLat:   ptr("4.0511"),
			DeliveryLng:   ptr("9.7679"),
			PaymentMethod: &method,
		}, admin, "", at)

		require.NoError(t, err)
		require.Len(t, edits, 3)
		assert.Equal(t, order.FieldDeliveryLat, edits[0].Field())
		assert.Nil(t, edits[0].OldValue())
		assert.Equal(t, order.FieldDeliveryLng, edits[1].Field())
		assert.Equal(t, order.FieldPaymentMethod, edits[2].Field())
		assert.Equal(t, "cash", *edits[2].OldValue())
		assert.Equal(t, order.PaymentOrangeMoney, o.PaymentMethod())
	})

	t.Run("blank address is rejected", func(t *testing.T) {
		o := restoreAt(t, order.Pending)

		_, err := o.Edit(order.Changes{DeliveryAddress: ptr("   "), Notes: ptr("x")}, admin, "", at)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "ring twice", o.Notes())
	})

	t.Run("unsupported payment method is rejected", func(t *testing.T) {
		o := restoreAt(t, order.Pending)
		method := order.PaymentMethod("paypal")

		_, err := o.Edit(order.Changes{PaymentMethod: &method}, admin, "", at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminal orders cannot be edited", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Rejected} {
			o := restoreAt(t, s)

			_, err := o.Edit(order.Changes{Notes: ptr("late note")}, admin, "", at)

			require.ErrorIs(t, err, order.ErrOrderIsFinal, s.String())
		}
	})
}
