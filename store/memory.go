package store

import (
	"context"
	"sync"
)

// Memory is an in-process [Store]. It is the localStorage analog for
// single-run sessions and the default backend in tests.
type Memory struct {
	mu  sync.RWMutex
	rec *Record
}

// NewMemory describes the newmemory operation and its observable behavior.
//
// NewMemory does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemory() *Memory {
	return &Memory{}
}

// Save overwrites the current record.
func (m *Memory) Save(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := rec
	m.rec = &copied
	return nil
}

// Load returns a copy of the current record, or (nil, nil) when absent.
func (m *Memory) Load(_ context.Context) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.rec == nil {
		return nil, nil
	}
	copied := *m.rec
	return &copied, nil
}

// Clear removes the current record. Clearing an empty store is a no-op.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rec = nil
	return nil
}
