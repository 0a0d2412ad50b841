package validation

import (
	"errors"
	"net/http"

	"github.com/deppfellow/intake/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payloads that know their rules.
//
// Typical pattern:
//   - declare field rules in struct tags (`validate:"required,gt=0"`)
//   - implement Validate(v) as v.Validate(p, <cross-field rules>...)
type Validatable interface {
	Validate(v *Validator) error
}

// Normalizer is a payload that produces its normalized record once valid.
type Normalizer[T any] interface {
	Validatable
	Normalize() T
}

// Normalize validates payload and returns its normalized record. Rule
// violations come back as Failures, which the HTTP layer reports as a 422.
//
//	u, err := validation.Normalize[user.User](v, payload)
func Normalize[T any](v *Validator, payload Normalizer[T]) (T, error) {
	if err := payload.Validate(v); err != nil {
		var zero T
		return zero, err
	}
	return payload.Normalize(), nil
}

// Bind decodes the JSON request body into payload, which must be a pointer
// to a struct. A malformed body or a value of the wrong type is a 400; the
// rules are applied later, by Normalize.
func Bind(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), true, nil, nil)
	}
	return nil
}

// ToFieldErrors converts failures into the client-facing error list.
func ToFieldErrors(failures Failures) []errs.FieldError {
	fieldErrors := make([]errs.FieldError, 0, len(failures))
	for _, failure := range failures {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: failure.Field,
			Error: failure.Message,
		})
	}
	return fieldErrors
}

// bindErrorMessage extracts echo's description of a bind failure
// ("Syntax error: offset=1, error=...").
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return http.StatusText(http.StatusBadRequest)
}
