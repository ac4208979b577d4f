package mocks

import (
	"context"
	"sync"

	"visitpazar/infras/otel"
)

// Recorder is an otel.Otel that keeps every scope it opened in memory.
type Recorder struct {
	mu     sync.Mutex
	scopes []*scopeImpl
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	scope := newScope(scopeName, spanName)

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns copies of the recorded spans in the order they were opened.
func (r *Recorder) Spans() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	spans := make([]Span, 0, len(r.scopes))
	for _, scope := range r.scopes {
		spans = append(spans, scope.snapshot())
	}

	return spans
}

// Span returns the first recorded span with the given name.
func (r *Recorder) Span(name string) (Span, bool) {
	for _, span := range r.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return Span{}, false
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func NewOtel() otel.Otel {
	return NewRecorder()
}
