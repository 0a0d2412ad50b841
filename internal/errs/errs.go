// Package errs defines the error shapes the API sends back to clients.
//
// Every failure leaving the HTTP layer is an *HTTPError: a machine-readable
// code, a human message, the status and, for rejected records, the list of
// field-level violations.
package errs
