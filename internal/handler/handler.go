// Package handler is the first layer after the router.
//
// Every record endpoint goes through the same pipeline: bind the JSON body
// into a fresh payload, hand it to the service layer, which validates and
// normalizes it, and write the confirmation. Failures are returned to the
// global error handler.
package handler
