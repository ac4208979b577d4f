package validator

import (
	"errors"
	"reflect"
	"strings"

	"visitpazar/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"gt":          "{field} must be greater than {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be at most {param} long",
		"min":         "{field} must be at least {param} long",
		"email":       "{field} must be a valid email address",
		"url":         "{field} must be a valid URL",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not be larger than {param} MB",
	}
)

// fieldErrors turns every rule violation into a FieldError, in struct order.
func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return nil
	}

	fields := make([]failure.FieldError, 0, len(valErrors))

	for _, valErr := range valErrors {
		field := fieldPath(valErr.Namespace())

		msg := messages[valErr.Tag()]
		if msg == "" {
			msg = "{field} failed on the '" + valErr.Tag() + "' rule"
		}

		msg = strings.ReplaceAll(msg, "{field}", field)
		msg = strings.ReplaceAll(msg, "{param}", valErr.Param())

		fields = append(fields, failure.FieldError{Field: field, Message: msg})
	}

	return fields
}

// fieldPath drops the root struct name, so CreatePlaceRequest.location.lat becomes location.lat.
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}

	if t == timeType {
		return "a datetime (RFC 3339 or YYYY-MM-DD)"
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "a list"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a valid " + t.String()
	}
}
