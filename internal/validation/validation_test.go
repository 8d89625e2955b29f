package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/backend/internal/errs"
)

var testValidate = validator.New()

type signupPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (p *signupPayload) Validate() error {
	return testValidate.Struct(p)
}

func newTestContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newTestContext(`{"email":"a@b.c","password":"pw"}`)

	payload := &signupPayload{}
	err := BindAndValidate(c, payload)

	require.NoError(t, err)
	assert.Equal(t, "a@b.c", payload.Email)
	assert.Equal(t, "pw", payload.Password)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newTestContext(`{"email":`)

	err := BindAndValidate(c, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Invalid request body", httpErr.Message)
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newTestContext(`{"email":"a@b.c"}`)

	err := BindAndValidate(c, &signupPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "password", httpErr.Errors[0].Field)
	assert.Equal(t, "is required", httpErr.Errors[0].Error)
}

type customPayload struct {
	N int `json:"n"`
}

func (p *customPayload) Validate() error {
	if p.N <= 0 {
		return CustomValidationErrors{
			{Field: "n", Message: "must be a positive integer"},
		}
	}
	return nil
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newTestContext(`{"n":0}`)

	err := BindAndValidate(c, &customPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "n", httpErr.Errors[0].Field)
	assert.Equal(t, "must be a positive integer", httpErr.Errors[0].Error)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-01-31"))
	assert.False(t, IsValidDate("2025-13-01"))
	assert.False(t, IsValidDate("01/31/2025"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:30"))
	assert.True(t, IsValidClockTime("09:30:15"))
	assert.False(t, IsValidClockTime("25:00"))
	assert.False(t, IsValidClockTime("half past nine"))
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("14:05")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 5, got.Minute())
	assert.Equal(t, 0, got.Second())

	got, err = ParseClockTime("14:05:59")
	require.NoError(t, err)
	assert.Equal(t, 59, got.Second())

	_, err = ParseClockTime("nope")
	assert.Error(t, err)
}
