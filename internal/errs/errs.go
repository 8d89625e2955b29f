// Package errs defines custom error types and utilities.
//
// Its purpose is to give every failure mode in the API a consistent,
// serializable shape (e.g. FieldError for input validation or HTTPError
// for whole responses) so clients always receive a JSON body with a
// message, a machine-readable code, and the HTTP status that was sent.
package errs
