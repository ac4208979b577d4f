package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"visitpazar/shared/failure"
	"visitpazar/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "665f1c2e8a1b2c3d4e5f6a7b"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"665f1c2e8a1b2c3d4e5f6a7b"}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{
			name:     "plain error",
			err:      errors.New("boom"),
			code:     http.StatusInternalServerError,
			expected: `{"error":"boom"}`,
		},
		{
			name: "validation error",
			err: failure.Unprocessable("validation failed: rating must be less than or equal to 5",
				failure.FieldError{Field: "rating", Message: "rating must be less than or equal to 5"}),
			code:     http.StatusUnprocessableEntity,
			expected: `{"error":"validation failed: rating must be less than or equal to 5","fields":[{"field":"rating","message":"rating must be less than or equal to 5"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body response.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SERVER PREPARING TO SHUT DOWN", body.Error)

	rec = httptest.NewRecorder()
	response.WithMessage(rec, http.StatusOK, "VisitPazar Backend is running")
	assert.JSONEq(t, `{"message":"VisitPazar Backend is running"}`, rec.Body.String())
}
