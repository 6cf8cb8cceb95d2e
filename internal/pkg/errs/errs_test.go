package errs_test

import (
	"errors"
	"testing"

	"recycling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("transportOrderId", "123")

		assert.Equal(t, "transportOrderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("transportOrderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: transportOrderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("category")

		assert.Equal(t, "category", err.ParamName)
		assert.Equal(t, "value is invalid: category", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("category", cause)

		assert.Equal(t, "value is invalid: category (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("recyclerId")

	assert.Equal(t, "recyclerId", err.ParamName)
	assert.Equal(t, "value is required: recyclerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestStateConflictError(t *testing.T) {
	t.Run("NewStateConflictError", func(t *testing.T) {
		err := errs.NewStateConflictError("CompleteLoading", "order already transitioned")

		assert.Equal(t, "CompleteLoading", err.Operation)
		assert.Equal(t, "state conflict: CompleteLoading: order already transitioned", err.Error())
		assert.Equal(t, errs.ErrStateConflict, err.Unwrap())
	})

	t.Run("NewStateConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewStateConflictErrorWithCause("CreateReceipt", "receipt already exists", cause)

		assert.Equal(t,
			"state conflict: CreateReceipt: receipt already exists (cause: duplicate key value violates unique constraint)",
			err.Error())
	})
}

func TestIntegrityViolationError(t *testing.T) {
	err := errs.NewIntegrityViolationError("category weights do not sum to order weight")

	assert.Equal(t, "integrity violation: category weights do not sum to order weight", err.Error())
	assert.Equal(t, errs.ErrIntegrityViolation, err.Unwrap())
}

func TestSequenceExhaustedError(t *testing.T) {
	err := errs.NewSequenceExhaustedError("TO", "20250101")

	assert.Equal(t, "TO", err.Prefix)
	assert.Equal(t, "20250101", err.Day)
	assert.Equal(t, "sequence exhausted: no numbers left for TO20250101", err.Error())
	assert.Equal(t, errs.ErrSequenceExhausted, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("weight"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 0, 1, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("workerId"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("version", errors.New("bad")), errs.ErrVersionIsInvalid)
	require.ErrorIs(t, errs.NewStateConflictError("Accept", "stale"), errs.ErrStateConflict)
	require.ErrorIs(t, errs.NewIntegrityViolationError("weights"), errs.ErrIntegrityViolation)
	require.ErrorIs(t, errs.NewSequenceExhaustedError("WR", "20250101"), errs.ErrSequenceExhausted)
}
