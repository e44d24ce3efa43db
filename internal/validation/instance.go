package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	directionNames = map[string]struct{}{"ltr": {}, "rtl": {}, "ttb": {}, "btt": {}}
	profileNames   = map[string]struct{}{"auto": {}, "ascii": {}, "ansi": {}, "ansi256": {}, "truecolor": {}}
	themeNames     = map[string]struct{}{"default": {}, "dark": {}, "light": {}}
)

// Validator returns the shared validator instance with pagedots' custom tags registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their yaml key so messages match what users typed.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("odd", func(fl validator.FieldLevel) bool {
			switch fl.Field().Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return fl.Field().Int()%2 != 0
			case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				return fl.Field().Uint()%2 != 0
			default:
				return false
			}
		})

		_ = v.RegisterValidation("direction", nameIn(directionNames))
		_ = v.RegisterValidation("profile_name", nameIn(profileNames))
		_ = v.RegisterValidation("theme_name", nameIn(themeNames))

		validateInst = v
	})

	return validateInst
}

// nameIn accepts empty strings (defaults apply) and case-insensitive members of names.
func nameIn(names map[string]struct{}) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		if value == "" {
			return true
		}
		_, ok := names[value]
		return ok
	}
}
