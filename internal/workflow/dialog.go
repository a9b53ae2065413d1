package workflow

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"okada/internal/adapters/in/http/api"
	"okada/internal/core/domain/model/order"

	"golang.org/x/sync/errgroup"
)

// Dialog is the status workflow view of a single order. It is not safe for
// concurrent use.
type Dialog struct {
	svc     OrderService
	orderID int64

	details       api.OrderDetails
	status        order.Status
	statusHistory []api.StatusTransition
	editHistory   []api.FieldEdit
	riders        []api.Rider

	// Per-section load errors. A section that failed keeps its previous
	// content and can be retried on its own.
	statusHistoryErr error
	editHistoryErr   error
	ridersErr        error

	target  *order.Status
	riderID *int64
	notes   string

	lastErr error
	closed  bool
}

// Open loads the order, both histories and, unless the order is final, the
// available riders. Only a failed order load is returned; the other sections
// start empty and report their failure through StatusHistoryError,
// EditHistoryError and RidersError.
func Open(ctx context.Context, svc OrderService, orderID int64) (*Dialog, error) {
	d := &Dialog{
		svc:           svc,
		orderID:       orderID,
		statusHistory: []api.StatusTransition{},
		editHistory:   []api.FieldEdit{},
		riders:        []api.Rider{},
	}

	if err := d.Refresh(ctx); err != nil {
		return nil, err
	}
	_ = d.ReloadRiders(ctx)
	return d, nil
}

// ReloadRiders fetches the available riders again. On failure the previous
// list is kept and the error is also available from RidersError. Final orders
// need no rider, so nothing is fetched for them.
func (d *Dialog) ReloadRiders(ctx context.Context) error {
	if d.IsFinal() {
		d.riders, d.ridersErr = []api.Rider{}, nil
		return nil
	}

	riders, err := d.svc.GetAvailableRiders(ctx)
	if err != nil {
		d.ridersErr = err
		return err
	}
	d.riders, d.ridersErr = nonNil(riders), nil
	return nil
}

func (d *Dialog) Order() api.OrderDetails { return d.details }

func (d *Dialog) Status() order.Status { return d.status }

func (d *Dialog) StatusHistory() []api.StatusTransition { return slices.Clone(d.statusHistory) }

func (d *Dialog) EditHistory() []api.FieldEdit { return slices.Clone(d.editHistory) }

func (d *Dialog) AvailableRiders() []api.Rider { return slices.Clone(d.riders) }

// StatusHistoryError is the error of the last failed status history load, nil
// once a load succeeded.
func (d *Dialog) StatusHistoryError() error { return d.statusHistoryErr }

func (d *Dialog) EditHistoryError() error { return d.editHistoryErr }

func (d *Dialog) RidersError() error { return d.ridersErr }

// NextStatuses is computed from the local transition table, so it never
// disagrees with the guards in Select and Confirm.
func (d *Dialog) NextStatuses() []order.Status { return d.status.NextStatuses() }

// IsFinal reports that the order accepts no further transition and the
// dialog shows no controls.
func (d *Dialog) IsFinal() bool { return d.status.IsTerminal() }

func (d *Dialog) Timeline() []order.TimelineStep { return order.Timeline(d.status) }

func (d *Dialog) Target() (order.Status, bool) {
	if d.target == nil {
		return order.Unknown, false
	}
	return *d.target, true
}

// LastError is the error of the most recent failed change, or nil once a
// change succeeded.
func (d *Dialog) LastError() error { return d.lastErr }

// Select chooses the target status. Choosing a status that does not need a
// rider clears a previously chosen rider.
func (d *Dialog) Select(target order.Status) error {
	if err := d.status.ValidateTransition(target); err != nil {
		return err
	}
	d.target = &target
	if !target.RequiresRider() {
		d.riderID = nil
	}
	return nil
}

// SelectRider chooses the rider for a rider_assigned transition. The rider
// must be one of AvailableRiders.
func (d *Dialog) SelectRider(riderID int64) error {
	if d.target == nil {
		return ErrNoTargetSelected
	}
	if !d.target.RequiresRider() {
		return ErrRiderNotExpected
	}
	if d.ridersErr != nil && len(d.riders) == 0 {
		return fmt.Errorf("%w: rider list not loaded: %w", ErrRiderNotAvailable, d.ridersErr)
	}
	if !slices.ContainsFunc(d.riders, func(r api.Rider) bool { return r.Id == riderID }) {
		return fmt.Errorf("%w: %d", ErrRiderNotAvailable, riderID)
	}
	d.riderID = &riderID
	return nil
}

func (d *Dialog) SetNotes(notes string) { d.notes = notes }

// CanConfirm reports whether Confirm would pass the local guards.
func (d *Dialog) CanConfirm() bool {
	return d.checkTransition() == nil
}

func (d *Dialog) checkTransition() error {
	if d.closed {
		return ErrDialogClosed
	}
	if d.target == nil {
		return ErrNoTargetSelected
	}
	if err := d.status.ValidateTransition(*d.target); err != nil {
		return err
	}
	if d.target.RequiresRider() && d.riderID == nil {
		return order.ErrRiderIsRequired
	}
	return nil
}

// Confirm sends the selected transition. Local guard failures return before
// any request. A remote failure leaves the dialog state as it was and is kept
// in LastError. After success the selection is cleared and the order is
// reloaded; a failed reload is reported wrapped in ErrRefreshFailed together
// with the transition that was applied.
func (d *Dialog) Confirm(ctx context.Context) (api.StatusTransition, error) {
	if err := d.checkTransition(); err != nil {
		return api.StatusTransition{}, err
	}

	version := d.details.Order.Version
	update := StatusUpdate{
		OrderID:         d.orderID,
		Status:          d.target.String(),
		RiderID:         d.riderID,
		ExpectedVersion: &version,
	}
	if notes := strings.TrimSpace(d.notes); notes != "" {
		update.Notes = &notes
	}

	transition, err := d.svc.UpdateStatus(ctx, update)
	if err != nil {
		d.lastErr = err
		return api.StatusTransition{}, err
	}

	d.lastErr = nil
	d.target, d.riderID, d.notes = nil, nil, ""

	if err = d.Refresh(ctx); err != nil {
		return transition, err
	}
	return transition, nil
}

// Edit changes non-status fields. Final orders and empty updates are refused
// locally.
func (d *Dialog) Edit(ctx context.Context, update OrderUpdate) ([]api.FieldEdit, error) {
	if d.closed {
		return nil, ErrDialogClosed
	}
	if d.IsFinal() {
		return nil, order.ErrOrderIsFinal
	}
	if update.isEmpty() {
		return nil, order.ErrNothingToEdit
	}

	version := d.details.Order.Version
	update.OrderID = d.orderID
	update.ExpectedVersion = &version

	edits, err := d.svc.UpdateOrder(ctx, update)
	if err != nil {
		d.lastErr = err
		return nil, err
	}
	d.lastErr = nil

	if err = d.Refresh(ctx); err != nil {
		return edits, err
	}
	return edits, nil
}

// Refresh reloads the order and both histories concurrently. A failed order
// load is returned wrapped in ErrRefreshFailed and nothing is replaced. A
// failed history load keeps that history as it was and is reported by
// StatusHistoryError or EditHistoryError; Refresh still succeeds.
func (d *Dialog) Refresh(ctx context.Context) error {
	var (
		details          api.OrderDetails
		statusHistory    []api.StatusTransition
		editHistory      []api.FieldEdit
		statusHistoryErr error
		editHistoryErr   error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = d.svc.GetOrder(gctx, d.orderID)
		return err
	})
	g.Go(func() error {
		statusHistory, statusHistoryErr = d.svc.GetStatusHistory(gctx, d.orderID)
		return nil
	})
	g.Go(func() error {
		editHistory, editHistoryErr = d.svc.GetEditHistory(gctx, d.orderID)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	status, err := order.ParseStatus(details.Order.Status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	d.details = details
	d.status = status

	d.statusHistoryErr = statusHistoryErr
	if statusHistoryErr == nil {
		d.statusHistory = nonNil(statusHistory)
	}
	d.editHistoryErr = editHistoryErr
	if editHistoryErr == nil {
		d.editHistory = nonNil(editHistory)
	}

	if d.target != nil && !d.status.CanTransitionTo(*d.target) {
		d.target, d.riderID = nil, nil
	}
	return nil
}

// Close discards the selection; later changes are refused.
func (d *Dialog) Close() {
	d.closed = true
	d.target, d.riderID, d.notes = nil, nil, ""
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
