package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"visitpazar/shared/constant"
	"visitpazar/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	validationFailedMessage = "validation failed"
	bodyField               = "body"
)

var (
	validate *val.Validate
	timeType = reflect.TypeOf(time.Time{})
)

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return file.Size <= maxSizeBytes
}

// jsonTagName reports fields under the name clients send them with.
func jsonTagName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return constant.Empty
		}

		if name != constant.Empty {
			return name
		}
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. A body that cannot be decoded into T is reported
// the same way as a rule violation, naming the offending field where it is known. A value of the
// wrong JSON type does not stop decoding, so it is reported together with the violations found
// in the rest of the body.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	err := decoder.Decode(data)
	if err == nil {
		return ValidateStruct(data)
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || !decodedPast(typeErr) {
		return decodeFailure(err)
	}

	typeField := typeFieldError(typeErr)
	fields := []failure.FieldError{typeField}

	for _, field := range fieldErrors(validate.Struct(data)) {
		if field.Field != typeField.Field {
			fields = append(fields, field)
		}
	}

	return unprocessable(fields)
}

// decodedPast reports whether encoding/json kept decoding after err. It does for
// mismatched JSON types, but stops at the error of a custom UnmarshalJSON, which
// for request bodies is only the datetime type. A top level mismatch leaves
// nothing decoded.
func decodedPast(err *json.UnmarshalTypeError) bool {
	return err.Field != constant.Empty && err.Type != timeType
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return validationFailure(err)
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return validationFailure(err)
	}

	return nil
}

func validationFailure(err error) error {
	fields := fieldErrors(err)
	if len(fields) == 0 {
		return failure.Unprocessable(err.Error()) //nolint:wrapcheck
	}

	return unprocessable(fields)
}

func unprocessable(fields []failure.FieldError) error {
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field.Message)
	}

	return failure.Unprocessable(fmt.Sprintf("%s: %s", validationFailedMessage, strings.Join(messages, "; ")), fields...) //nolint:wrapcheck
}

func typeFieldError(err *json.UnmarshalTypeError) failure.FieldError {
	field := err.Field
	if field == constant.Empty {
		field = bodyField
	}

	return failure.FieldError{Field: field, Message: fmt.Sprintf("%s must be %s", field, typeName(err.Type))}
}

func decodeFailure(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &typeErr):
		return unprocessable([]failure.FieldError{typeFieldError(typeErr)})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return unprocessable([]failure.FieldError{{Field: bodyField, Message: "body must be valid JSON"}})
	case errors.Is(err, io.EOF):
		return unprocessable([]failure.FieldError{{Field: bodyField, Message: "body is required"}})
	default:
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}
}
