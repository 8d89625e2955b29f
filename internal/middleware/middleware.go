// Package middleware contains the HTTP middleware stack: CORS, request
// correlation IDs, request-scoped logging, panic recovery, security
// headers, and the global error handler every failure funnels through.
package middleware
