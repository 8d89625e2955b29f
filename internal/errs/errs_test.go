package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
	assert.Equal(t, "CONFLICT", MakeUpperCaseWithUnderscores("Conflict"))
}

func TestNewBadRequestError(t *testing.T) {
	fieldErrors := []FieldError{{Field: "title", Error: "is required"}}
	err := NewBadRequestError("Validation failed", nil, fieldErrors)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Validation failed", err.Message)
	assert.Equal(t, fieldErrors, err.Errors)
	assert.Equal(t, "Validation failed", err.Error())
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "USER_NOT_FOUND"
	err := NewBadRequestError("The referenced User does not exist", &code, nil)

	assert.Equal(t, "USER_NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("Email already registered", nil)

	assert.Equal(t, http.StatusConflict, err.Status)
	assert.Equal(t, "CONFLICT", err.Code)
	assert.Equal(t, "Email already registered", err.Message)
}

func TestNewUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("Invalid email or password")

	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.Equal(t, "UNAUTHORIZED", err.Code)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Task not found", nil)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "NOT_FOUND", err.Code)
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError("Database error", "connection refused")

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Database error", err.Message)
	assert.Equal(t, "connection refused", err.Err)

	fallback := NewInternalServerError("", "")
	assert.Equal(t, "Internal Server Error", fallback.Message)
}

func TestWithMessageCopies(t *testing.T) {
	orig := NewNotFoundError("Task not found", nil)
	changed := orig.WithMessage("Resource not found")

	require.NotSame(t, orig, changed)
	assert.Equal(t, "Task not found", orig.Message)
	assert.Equal(t, "Resource not found", changed.Message)
	assert.Equal(t, orig.Status, changed.Status)
	assert.Equal(t, orig.Code, changed.Code)
}

func TestIsMatchesOnType(t *testing.T) {
	err := NewConflictError("x", nil)
	assert.True(t, err.Is(NewNotFoundError("y", nil)))
	assert.False(t, err.Is(assert.AnError))
}
