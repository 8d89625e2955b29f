// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handlers, performs business operations
// (credential hashing and verification, temporal field parsing,
// not-found mapping), and calls repository methods to touch the store.
package service
