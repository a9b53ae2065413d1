package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"okada/internal/adapters/in/http/api"
	"okada/internal/core/domain/model/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRenderer_Badge(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	assert.Equal(t, " RIDER ASSIGNED ", r.Badge(order.RiderAssigned))
	assert.Equal(t, " DELIVERED ", r.Badge(order.Delivered))
	assert.Equal(t, " CANCELLED ", r.Badge(order.Cancelled))
}

func TestRenderer_Timeline(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})

	tests := []struct {
		status order.Status
		want   []string
	}{
		{
			status: order.InTransit,
			want: []string{
				"[x] PENDING",
				"[x] CONFIRMED",
				"[x] RIDER ASSIGNED",
				"[>] IN TRANSIT",
				"[ ] QUALITY VERIFICATION",
				"[ ] DELIVERED",
			},
		},
		{
			status: order.Rejected,
			want: []string{
				"[-] PENDING",
				"[-] CONFIRMED",
				"[-] RIDER ASSIGNED",
				"[-] IN TRANSIT",
				"[-] QUALITY VERIFICATION",
				"[-] DELIVERED",
			},
		},
		{
			status: order.WaitingApproval,
			want: []string{
				"[ ] PENDING",
				"[ ] CONFIRMED",
				"[ ] RIDER ASSIGNED",
				"[ ] IN TRANSIT",
				"[ ] QUALITY VERIFICATION",
				"[ ] DELIVERED",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, lines(r.Timeline(tt.status))); diff != "" {
				t.Errorf("timeline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderer_StatusHistory(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	pending := "pending"
	notes := "paid by MoMo"
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	r.StatusHistory([]api.StatusTransition{
		{NewStatus: "pending", ChangedByType: "system", CreatedAt: at},
		{PreviousStatus: &pending, NewStatus: "confirmed", ChangedBy: 7, ChangedByType: "admin", Notes: &notes, CreatedAt: at.Add(time.Minute)},
	})

	want := []string{
		"2026-06-01 12:00  (new) -> pending  by system #0",
		"2026-06-01 12:01  pending -> confirmed  by admin #7  paid by MoMo",
	}
	if diff := cmp.Diff(want, lines(buf.String())); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_NextStatuses(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.NextStatuses(order.QualityVerification.NextStatuses())
	r.NextStatuses(nil)

	want := []string{
		"Next: waiting_approval, delivered, rejected",
		"Final status, no further action.",
	}
	assert.Empty(t, cmp.Diff(want, lines(buf.String())))
}

func TestFCFA(t *testing.T) {
	assert.Equal(t, "4 000 FCFA", fcfa(400000))
	assert.Equal(t, "1 250 000 FCFA", fcfa(125000000))
	assert.Equal(t, "0 FCFA", fcfa(0))
	assert.Equal(t, "950 FCFA", fcfa(95000))
}
