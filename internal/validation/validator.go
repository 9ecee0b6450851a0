package validation

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports json field names and knows the
// notblank and whole tags used by product types.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("whole", validateWhole)
	return v
}

// notblank: non-empty after trimming surrounding whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// whole: a float with no fractional part.
func validateWhole(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// FieldErrors maps field names to a single user-facing message.
type FieldErrors map[string]string

// Messages converts validator errors to FieldErrors. Fields without an entry in
// messages fall back to a generic "<field> is invalid" text. A nil error yields nil.
func Messages(err error, messages map[string]string) FieldErrors {
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"_": err.Error()}
	}
	out := make(FieldErrors, len(validationErrs))
	for _, e := range validationErrs {
		if _, seen := out[e.Field()]; seen {
			continue
		}
		if msg, ok := messages[e.Field()]; ok {
			out[e.Field()] = msg
			continue
		}
		out[e.Field()] = e.Field() + " is invalid"
	}
	return out
}
