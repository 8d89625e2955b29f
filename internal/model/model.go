// Package model defines the typed records persisted by the service
// and the serialization rules that turn them into transport JSON.
//
// Rows never cross the handler boundary directly: each entity has an
// explicit JSON view, and every temporal field is mapped to text in one
// place so dates, times of day, and timestamps always serialize the
// same way.
package model
