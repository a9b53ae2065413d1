package commands_test

import (
	"fmt"
	"testing"
	"time"

	"okada/internal/core/domain/model/kernel"
	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

var admin = order.Actor{Type: order.ActorAdmin, ID: 2}

func ptr[T any](v T) *T { return &v }

func storedOrder(t *testing.T, status order.Status, version int64) *order.Order {
	t.Helper()
	return storedOrderWithID(t, 42, status, version)
}

func storedOrderWithID(t *testing.T, id int64, status order.Status, version int64) *order.Order {
	t.Helper()
	subtotal, err := kernel.NewMoney(180000)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(40000)
	require.NoError(t, err)

	placed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:              id,
		Number:          fmt.Sprintf("OKD-%d", id),
		CustomerID:      3,
		Status:          status,
		DeliveryAddress: "Quartier Bonapriso, Douala",
		PaymentMethod:   order.PaymentOrangeMoney,
		PaymentStatus:   order.PaymentPaid,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           subtotal.Add(fee),
		Notes:           "call on arrival",
		CreatedAt:       placed,
		UpdatedAt:       placed,
		Version:         version,
	})
	require.NoError(t, err)
	return o
}

func storedRider(t *testing.T, id int64, status rider.Status) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(id, "Samuel Nkeng", "+237677000000", 48, 500, status)
	require.NoError(t, err)
	return r
}
