package mocks

import (
	"sync"

	"frontdesk/infras/otel"
)

type Scope struct {
	Name string

	mu    sync.Mutex
	err   error
	ended bool
}

func (s *Scope) AddEvent(_ string) {}

func (s *Scope) SetAttribute(_ string, _ any) {}

func (s *Scope) SetAttributes(_ map[string]any) {}

func (s *Scope) End() {
	s.mu.Lock()
	s.ended = true
	s.mu.Unlock()
}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Scope) TraceIfError(err *error) {
	if err != nil && *err != nil {
		s.TraceError(*err)
	}
}

// Err is the last error traced on the scope.
func (s *Scope) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *Scope) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

func NewScope() otel.Scope {
	return &Scope{}
}
