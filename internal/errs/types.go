package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code may be nil, in which case the generic "BAD_REQUEST" code is
// used. fieldErrors carries per-field validation failures and may be
// nil for non-validation 400s (e.g. foreign key violations).
func NewBadRequestError(message string, code *string, fieldErrors []FieldError) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  fieldErrors,
	}
}

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
//
// Used for failed logins. The same message is produced whether the
// email is unknown or the password is wrong, so the response does not
// reveal which accounts exist.
func NewUnauthorizedError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message: message,
		Status:  http.StatusUnauthorized,
	}
}

// NewConflictError creates a 409 Conflict HTTPError.
//
// Used when a uniqueness constraint would be violated, e.g. registering
// an email that already exists.
func NewConflictError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusConflict))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusConflict,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// message is what the client sees; detail carries the underlying store
// diagnostic in the response's "error" field. Callers must never pass
// credential material in either.
func NewInternalServerError(message, detail string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}

	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     detail,
	}
}
