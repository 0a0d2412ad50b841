// Package service sits between the handlers and the records.
//
// It receives payloads the handler layer bound from the request, validates
// and normalizes them with the server's validator and builds the
// confirmation sent back to the client. Nothing is stored.
package service
