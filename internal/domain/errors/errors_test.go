package errors

import (
	"net/http"
	"testing"

	"phonebook/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithReasonKeepsCode(t *testing.T) {
	err := ErrNotFound.WithReason("Entry with given id does not exists!")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrGroupNotFound))
	assert.Equal(t, "Entry with given id does not exists!", err.Message())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, CodeNotFound, err.ErrorCode())
	// predefined variant is untouched
	assert.Equal(t, "Resource not found", ErrNotFound.Message())
}

func TestBaseError_IsThroughWrap(t *testing.T) {
	wrapped := errors.Wrap(ErrNotOwner.WithReason("nope"), "update entry")

	assert.True(t, errors.Is(wrapped, ErrNotOwner))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "nope", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewDatabaseExecuteError(cause, "create entry")

	assert.True(t, errors.Is(err, ErrInternalError))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeInternalError, err.ErrorCode())
	assert.Equal(t, "Something went wrong, please try again later", err.Message())
	assert.NotContains(t, err.Message(), "pq:")
	assert.Contains(t, err.Error(), "connection refused")
}
