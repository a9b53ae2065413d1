package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"okada/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", int64(42))

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, int64(42), err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: order 42", err.Error())
		assert.Equal(t, []error{errs.ErrObjectNotFound}, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("rider", 7, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: rider, ID is: 7 (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, cause)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsInvalid}, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("delivered is final"))

		assert.Equal(t, "value is invalid: status (cause: delivered is final)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("limit", 500, 1, 100)

		assert.Equal(t, 500, err.Value)
		assert.Equal(t, "value is out of range: limit is 500, min value is 1, max value is 100", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsOutOfRange}, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("offset", -1, 0, 1000, errors.New("negative"))

		assert.Contains(t, err.Error(), "(cause: negative)")
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("search", "north\nside", 0, 10)

		assert.Contains(t, err.Error(), "north side")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("riderId")
	assert.Equal(t, "value is required: riderId", err.Error())
	assert.Equal(t, []error{errs.ErrValueIsRequired}, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("riderId", errors.New("rider_assigned needs a rider"))
	assert.Equal(t, "value is required: riderId (cause: rider_assigned needs a rider)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order", 3, 4)

	assert.Equal(t, int64(3), err.Expected)
	assert.Equal(t, int64(4), err.Actual)
	assert.Equal(t, "version is invalid: order expected 3, got 4", err.Error())
	assert.Equal(t, []error{errs.ErrVersionIsInvalid}, err.Unwrap())

	withCause := errs.NewVersionIsInvalidErrorWithCause("order", 3, 4, errors.New("concurrent update"))
	assert.Contains(t, withCause.Error(), "(cause: concurrent update)")
}

func TestErrorsCanBeMatched(t *testing.T) {
	wrapped := fmt.Errorf("load order: %w", errs.NewObjectNotFoundError("order", 1))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, 1, notFound.ID)

	require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("x", 1, 2), errs.ErrVersionIsInvalid)
}
