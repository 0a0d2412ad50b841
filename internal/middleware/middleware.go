// Package middleware holds the echo middleware applied to every request:
// rate limiting, CORS, secure headers, request ids, tracing, request-scoped
// logging, panic recovery, plus the global error handler.
package middleware
