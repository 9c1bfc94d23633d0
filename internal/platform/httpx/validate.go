package httpx

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags and reports the first failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return Invalidf("%s", err.Error())
	}
	fe := fieldErrs[0]
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return Invalidf("missing required field: %s", field)
	case "min", "gte":
		return Invalidf("field %s must be at least %s", field, fe.Param())
	case "max", "lte":
		return Invalidf("field %s must be at most %s", field, fe.Param())
	case "email":
		return Invalidf("field %s must be a valid email", field)
	default:
		return Invalidf("field %s failed %s validation", field, fe.Tag())
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
