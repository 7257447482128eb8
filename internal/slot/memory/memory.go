// Package memory provides an in-process slot backend. It backs the default
// configuration and the store's tests.
package memory

import (
	"context"
	"sync"
)

type Slot struct {
	mu      sync.Mutex
	payload []byte
	present bool
}

func New() *Slot {
	return &Slot{}
}

// Seed creates a slot pre-populated with the given payload.
func Seed(payload []byte) *Slot {
	s := New()
	s.payload = append([]byte(nil), payload...)
	s.present = true
	return s
}

func (s *Slot) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.present {
		return nil, nil
	}
	return append([]byte(nil), s.payload...), nil
}

func (s *Slot) Write(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = append([]byte(nil), payload...)
	s.present = true
	return nil
}
