package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// CrossField is the field name reported for violations of a CrossFieldRule.
const CrossField = "cross-field"

// Failure is a single violated rule.
type Failure struct {
	Field   string
	Message string
}

func (f Failure) Error() string {
	if f.Field == CrossField {
		return f.Message
	}
	return f.Field + " " + f.Message
}

// Failures is the error returned for a rejected record. It holds every
// field-level violation, or the first cross-field violation.
type Failures []Failure

func (f Failures) Error() string {
	messages := make([]string, 0, len(f))
	for _, failure := range f {
		messages = append(messages, failure.Error())
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Has reports whether field has a violation.
func (f Failures) Has(field string) bool {
	for _, failure := range f {
		if failure.Field == field {
			return true
		}
	}
	return false
}

// CrossFieldRule checks an invariant between several fields that already
// passed their own rules. It returns a non-empty message when the invariant
// is broken.
type CrossFieldRule func() string

// Validator runs field rules and cross-field rules against a payload.
//
// It is immutable once built and safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock replaces the time source used by date and age rules.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New builds a Validator with the custom field rules registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(v)
	}

	// Report fields under their JSON names ("confirm_password"), the names
	// the client actually sent.
	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.registerRules()

	return v
}

// Validate applies the field rules declared on payload, then, if they all
// passed, the cross-field rules in order.
//
// It returns nil or Failures. Any other error means payload is not a struct
// (or pointer to one) and is a programming error.
func (v *Validator) Validate(payload any, rules ...CrossFieldRule) error {
	if err := v.validate.Struct(payload); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return toFailures(fieldErrors)
		}
		return err
	}

	for _, rule := range rules {
		if message := rule(); message != "" {
			return Failures{{Field: CrossField, Message: message}}
		}
	}

	return nil
}

func toFailures(fieldErrors validator.ValidationErrors) Failures {
	failures := make(Failures, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		failures = append(failures, Failure{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return failures
}
