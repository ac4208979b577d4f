package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"visitpazar/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("malformed multipart form"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "malformed multipart form"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestUnprocessable(t *testing.T) {
	result := failure.Unprocessable("validation failed",
		failure.FieldError{Field: "rating", Message: "rating must be less than or equal to 5"},
		failure.FieldError{Field: "category", Message: "category must be one of cafe park"},
	)

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected code to be %d, got %d", http.StatusUnprocessableEntity, f.Code)
	}

	if len(f.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(f.Fields))
	}

	if f.Fields[0].Field != "rating" || f.Fields[1].Field != "category" {
		t.Errorf("unexpected field order: %+v", f.Fields)
	}
}

func TestInternalError(t *testing.T) {
	long := strings.Repeat("x", 500)

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("connection refused"),
			expected: &failure.Failure{Code: http.StatusInternalServerError, Message: "connection refused"},
		},
		{
			name:     "long driver message is truncated",
			input:    errors.New(long),
			expected: &failure.Failure{Code: http.StatusInternalServerError, Message: long[:200]},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.InternalError(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		limit    int
		expected string
	}{
		{name: "shorter than limit", msg: "abc", limit: 5, expected: "abc"},
		{name: "exact limit", msg: "abcde", limit: 5, expected: "abcde"},
		{name: "longer than limit", msg: "abcdefgh", limit: 3, expected: "abc"},
		{name: "multibyte runes", msg: "čćžšđ", limit: 2, expected: "čć"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.Truncate(tt.msg, tt.limit); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("handler: %w", failure.Unprocessable("test")),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "predefined failure",
			input:    failure.MediaStorageDisabled,
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetFields(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", failure.Unprocessable("bad", failure.FieldError{Field: "party_size", Message: "too small"}))

	fields := failure.GetFields(err)
	if len(fields) != 1 || fields[0].Field != "party_size" {
		t.Errorf("unexpected fields: %+v", fields)
	}

	if failure.GetFields(errors.New("plain")) != nil {
		t.Error("expected no fields for a plain error")
	}
}
