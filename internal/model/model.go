// Package model groups the record kinds the API accepts, one subpackage per
// kind. Each subpackage owns the request payload (raw input, with pointer
// fields so an absent field is told apart from a zero value), the normalized
// record echoed back on success, its constant sets and its cross-field rules.
package model
