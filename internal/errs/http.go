package errs

import "strings"

// FieldError is a single rule violation reported back to the client.
//
//	{ "field": "username", "error": "must not contain spaces" }
//
// Field is the JSON name of the offending field, or "cross-field" when the
// violation spans several fields.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the body of every error response.
//
//   - Code: machine-friendly error code (e.g. "VALIDATION_FAILED").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: per-field violations.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MakeUpperCaseWithUnderscores turns status text into an error code:
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
