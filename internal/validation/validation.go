// Package validation contains the rule engine every request payload goes
// through.
//
// Field rules are declared in `validate:"..."` struct tags and enforced with
// go-playground/validator; the rules the library does not ship (plate
// numbers, age limits, dates in the future...) are registered here. Rules
// spanning several fields run as a separate pass, only once every field rule
// passed. Violations come back as Failures, which the HTTP layer turns into
// field errors the client can understand.
package validation
