package failure

import (
	"errors"
	"net/http"

	"visitpazar/shared/constant"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes one offending field of a rejected payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var MediaStorageDisabled = &Failure{Code: http.StatusServiceUnavailable, Message: "media storage is not configured"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// Unprocessable returns a new Failure with code for payloads that fail validation.
func Unprocessable(msg string, fields ...FieldError) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
		Fields:  fields,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
// The message is cut to constant.MaxErrorDetail runes.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: Truncate(err.Error(), constant.MaxErrorDetail),
		}
	}

	return nil
}

// Truncate cuts msg to at most limit runes.
func Truncate(msg string, limit int) string {
	runes := []rune(msg)
	if limit < 0 || len(runes) <= limit {
		return msg
	}

	return string(runes[:limit])
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the field errors attached to a Failure, if any.
func GetFields(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}
