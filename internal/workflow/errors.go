package workflow

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoTargetSelected  = errors.New("no target status selected")
	ErrRiderNotAvailable = errors.New("rider is not in the available list")
	ErrRiderNotExpected  = errors.New("a rider can only be chosen for rider_assigned")
	ErrRefreshFailed     = errors.New("refreshing order failed")
	ErrDialogClosed      = errors.New("dialog is closed")

	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("order was changed concurrently")
	ErrRejected    = errors.New("request rejected by the order service")
	ErrUnavailable = errors.New("order service unavailable")
)

// RemoteError is a non-2xx answer of the order service.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("order service: %d %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto a sentinel so callers can use errors.Is.
func (e *RemoteError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return ErrRejected
	}
}
