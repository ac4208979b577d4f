package mocks

import (
	"maps"
	"sync"

	"visitpazar/infras/otel"
)

// Span is what a recorded scope captured before End.
type Span struct {
	Scope      string
	Name       string
	Attributes map[string]any
	Events     []string
	Errors     []error
	Ended      bool
}

type scopeImpl struct {
	mu   sync.Mutex
	span *Span
}

// AddEvent implements otel.Scope.
func (s *scopeImpl) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Events = append(s.span.Events, name)
}

// End implements otel.Scope.
func (s *scopeImpl) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Ended = true
}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Attributes[key] = value
}

// SetAttributes implements otel.Scope.
func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.span.Attributes, attributes)
}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.span.Errors = append(s.span.Errors, err)
}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) snapshot() Span {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := *s.span
	span.Attributes = maps.Clone(s.span.Attributes)
	span.Events = append([]string(nil), s.span.Events...)
	span.Errors = append([]error(nil), s.span.Errors...)

	return span
}

func newScope(scopeName, spanName string) *scopeImpl {
	return &scopeImpl{span: &Span{
		Scope:      scopeName,
		Name:       spanName,
		Attributes: map[string]any{},
	}}
}

func NewScope() otel.Scope {
	return newScope("", "")
}
