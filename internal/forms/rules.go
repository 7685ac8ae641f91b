package forms

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

// newValidator builds the rule set used by every form:
//
//	notblank        required, whitespace-only counts as missing
//	length=MIN:MAX  character count range, either bound may be omitted
//	maxbytes=N      encoded size limit (bcrypt only reads 72 bytes)
//	email           email syntax (built in)
//	eqfield=F       equal to another field (built in)
//
// Field names in errors come from the `form` tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "length", func(fl validator.FieldLevel) bool {
		lo, hi := parseRange(fl.Param())
		n := utf8.RuneCountInString(fl.Field().String())
		return (lo < 0 || n >= lo) && (hi < 0 || n <= hi)
	})
	mustRegister(v, "maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			panic(fmt.Sprintf("forms: bad maxbytes param %q", fl.Param()))
		}
		return len(fl.Field().String()) <= n
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", tag, err))
	}
}

// parseRange reads "MIN:MAX"; a missing bound is returned as -1.
func parseRange(param string) (lo, hi int) {
	minStr, maxStr, ok := strings.Cut(param, ":")
	if !ok {
		panic(fmt.Sprintf("forms: bad length param %q", param))
	}
	return bound(minStr), bound(maxStr)
}

func bound(s string) int {
	if s == "" {
		return -1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("forms: bad length bound %q", s))
	}
	return n
}

// message renders the human-readable text for a failed rule.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "eqfield":
		return fmt.Sprintf("Field must be equal to %s.", strings.ToLower(fe.Param()))
	case "length":
		lo, hi := parseRange(fe.Param())
		switch {
		case lo >= 0 && hi >= 0:
			return fmt.Sprintf("Field must be between %d and %d characters long.", lo, hi)
		case lo >= 0:
			return fmt.Sprintf("Field must be at least %d characters long.", lo)
		default:
			return fmt.Sprintf("Field cannot be longer than %d characters.", hi)
		}
	case "maxbytes":
		return "Field is too long."
	}
	return "Invalid value."
}
