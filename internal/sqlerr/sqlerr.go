// Package sqlerr specifically handles database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into the application's HTTP error taxonomy (e.g. a unique violation
// becomes a 409 Conflict, a missing row becomes a 404 Not Found).
package sqlerr
