package errs_test

import (
	"errors"
	"testing"

	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "123", cause)

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("clientEmail")

		assert.Equal(t, "clientEmail", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: clientEmail", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("clientEmail", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: clientEmail (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -5, 1, 10000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 10000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -5 is quantity, min value is 1, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batchNumber", "AB\nCD", 0, 10)
		assert.Contains(t, err.Error(), "AB CD")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("items")

		assert.Equal(t, "items", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: items", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("status already changed")
		err := errs.NewVersionIsInvalidErrorWithCause("order", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: order (cause: status already changed)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("staff", "assign order")

		assert.Equal(t, "staff", err.Role)
		assert.Equal(t, "assign order", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation is forbidden: role is: staff, operation is: assign order", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("staff identity does not match assignee")
		err := errs.NewForbiddenErrorWithCause("staff", "accept order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"operation is forbidden: role is: staff, operation is: accept order (cause: staff identity does not match assignee)",
			err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("order"), errs.ErrVersionIsInvalid)
		require.ErrorIs(t, errs.NewForbiddenError("client", "delete order"), errs.ErrForbidden)
	})
}
