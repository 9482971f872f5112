package mocks

import (
	"context"
	"sync"

	"frontdesk/infras/otel"
)

// Otel is an in-memory otel.Otel. It keeps every scope it opens so tests can check which spans
// recorded an error.
type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{Name: spanName}

	o.mu.Lock()
	o.scopes = append(o.scopes, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Failed returns the names of spans that recorded an error, in opening order.
func (o *Otel) Failed() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	var names []string

	for _, scope := range o.scopes {
		if scope.Err() != nil {
			names = append(names, scope.Name)
		}
	}

	return names
}

func NewOtel() otel.Otel {
	return &Otel{}
}

// NewRecorder is NewOtel without the interface conversion.
func NewRecorder() *Otel {
	return &Otel{}
}
