package mocks_test

import (
	"context"
	"errors"
	"testing"

	"visitpazar/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CapturesScope(t *testing.T) {
	rec := mocks.NewRecorder()

	_, scope := rec.NewScope(context.Background(), "handler", "handler.CreatePlace")
	scope.SetAttributes(map[string]any{"http.route": "/api/places"})
	scope.SetAttribute("http.status_code", 201)
	scope.AddEvent("Place created successfully")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("boom"))
	scope.End()

	span, ok := rec.Span("handler.CreatePlace")
	require.True(t, ok)
	assert.Equal(t, "handler", span.Scope)
	assert.Equal(t, map[string]any{"http.route": "/api/places", "http.status_code": 201}, span.Attributes)
	assert.Equal(t, []string{"Place created successfully"}, span.Events)
	require.Len(t, span.Errors, 1)
	assert.EqualError(t, span.Errors[0], "boom")
	assert.True(t, span.Ended)

	_, missing := rec.Span("handler.ListPlaces")
	assert.False(t, missing)
}

func TestRecorder_SpansAreCopies(t *testing.T) {
	rec := mocks.NewRecorder()

	_, scope := rec.NewScope(context.Background(), "service", "service.event.GetAll")
	scope.SetAttribute("limit", 20)

	first := rec.Spans()
	first[0].Attributes["limit"] = 99

	scope.SetAttribute("offset", 0)

	spans := rec.Spans()
	require.Len(t, spans, 1)
	assert.Equal(t, map[string]any{"limit": 20, "offset": 0}, spans[0].Attributes)
	assert.False(t, spans[0].Ended)
}

func TestNewScope_Standalone(t *testing.T) {
	scope := mocks.NewScope()

	assert.NotPanics(t, func() {
		scope.AddEvent("noop")
		scope.TraceIfError(errors.New("boom"))
		scope.End()
	})
}
