package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Custom rule tags.
const (
	TagNoSpaces     = "nospaces"
	TagDigitIfAlpha = "digitifalpha"
	TagEmailish     = "emailish"
	TagPlate        = "plate"
	TagMaxAge       = "maxage"
	TagNotFuture    = "notfuture"
)

// PlateExample is a plate number in the accepted format.
const PlateExample = "А123ВС77"

// plateRegex matches a plate number: one uppercase Cyrillic letter, three
// digits, two uppercase Cyrillic letters, the two-digit region code.
var plateRegex = regexp.MustCompile(`^[А-Я]\d{3}[А-Я]{2}\d{2}$`)

func (v *Validator) registerRules() {
	rules := map[string]validator.Func{
		TagNoSpaces:     noSpaces,
		TagDigitIfAlpha: digitIfAlpha,
		TagEmailish:     emailish,
		TagPlate:        plate,
		TagMaxAge:       v.maxAge,
		TagNotFuture:    v.notFuture,
	}

	for tag, fn := range rules {
		// RegisterValidation only fails on an empty tag or a nil func.
		if err := v.validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %q: %v", tag, err))
		}
	}
}

func noSpaces(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), " ")
}

// digitIfAlpha rejects a value made only of letters that has no digit.
// Anything with a digit or any non-letter character passes.
func digitIfAlpha(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return HasDigit(value) || !IsAlpha(value)
}

func emailish(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.Contains(value, "@") && strings.Contains(value, ".")
}

func plate(fl validator.FieldLevel) bool {
	return IsValidPlate(fl.Field().String())
}

// maxAge checks that a year lies at most param years before the current
// calendar year. Later years are accepted. The bound is computed from the
// clock so the input never takes part in a subtraction.
func (v *Validator) maxAge(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= int64(v.now().Year())-int64(limit)
	default:
		return false
	}
}

// notFuture rejects a timestamp strictly after the current UTC time.
func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.After(v.now().UTC())
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// HasDigit reports whether s contains at least one decimal digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// IsValidPlate reports whether s is a plate number like PlateExample.
func IsValidPlate(s string) bool {
	return plateRegex.MatchString(s)
}

// messageFor turns a tag violation into the message shown to the client.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "len":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be exactly %s characters", fe.Param())
		}
		return fmt.Sprintf("must contain exactly %s items", fe.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))

	case TagNoSpaces:
		return "must not contain spaces"

	case TagDigitIfAlpha:
		return "must contain at least one digit"

	case TagEmailish:
		return "is not valid"

	case TagPlate:
		return fmt.Sprintf("must match format '%s'", PlateExample)

	case TagMaxAge:
		return fmt.Sprintf("car age must not exceed %s years", fe.Param())

	case TagNotFuture:
		return "creation date cannot be in the future"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed the %s=%s rule", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
