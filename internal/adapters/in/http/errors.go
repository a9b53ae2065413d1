package http

import (
	"errors"
	"net/http"

	"okada/internal/adapters/in/http/api"
	"okada/internal/core/domain/model/order"
	"okada/internal/core/domain/model/rider"
	"okada/internal/core/domain/services"
	"okada/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusFor maps a use case error onto an HTTP status.
func statusFor(err error) int {
	var versionErr *errs.VersionIsInvalidError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.As(err, &versionErr), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, order.ErrTransitionNotAllowed),
		errors.Is(err, order.ErrRiderIsRequired),
		errors.Is(err, order.ErrOrderIsFinal),
		errors.Is(err, order.ErrNothingToEdit),
		errors.Is(err, rider.ErrRiderIsNotAvailable),
		errors.Is(err, services.ErrRiderMismatch),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// useCaseError renders err as an api.Error. Internal failures are logged and
// replaced by a generic message.
func (s *Server) useCaseError(ctx echo.Context, err error, internalMessage string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error(internalMessage, zap.Error(err), zap.String("uri", ctx.Request().RequestURI))
		message = internalMessage
	}
	return ctx.JSON(code, api.Error{Code: code, Message: message})
}

// HTTPErrorHandler renders echo errors (routing, binding, middleware) with the
// same body as use case errors.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.Error("unhandled error", zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, api.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("writing error response", zap.Error(writeErr))
		}
	}
}
