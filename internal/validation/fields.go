package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FirstFieldError extracts the first field failure from a validator error.
func FirstFieldError(err error) (validator.FieldError, bool) {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return ves[0], true
	}
	return nil, false
}

// FieldPath renders the namespace of a field error without its root struct,
// e.g. "File.indicator.visible_count" becomes "indicator.visible_count".
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

// Describe produces a short human message for a field error.
func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "odd":
		return "must be odd"
	case "gtfield":
		return fmt.Sprintf("must be greater than %s", fieldParamName(fe))
	case "ltfield":
		return fmt.Sprintf("must be less than %s", fieldParamName(fe))
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "required":
		return "is required"
	case "direction":
		return fmt.Sprintf("unknown direction %q (want ltr, rtl, ttb or btt)", fe.Value())
	case "profile_name":
		return fmt.Sprintf("unknown platform profile %q", fe.Value())
	case "theme_name":
		return fmt.Sprintf("unknown theme %q", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func fieldParamName(fe validator.FieldError) string {
	param := fe.Param()
	var b strings.Builder
	for i, r := range param {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
