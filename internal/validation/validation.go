// Package validation contains the logic for validating request data.
//
// It uses the validator library to enforce rules (like required fields
// or email formats) defined in struct tags, and extracts validation
// failures into a field-error format the client can understand.
package validation
