package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It counts writes so callers can observe
// coalescing.
type Memory struct {
	mu     sync.Mutex
	data   Record
	writes int
}

func NewMemory() *Memory {
	return &Memory{data: Record{}}
}

func (m *Memory) Get(_ context.Context, keys ...string) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(Record, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

func (m *Memory) Set(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range rec {
		m.data[k] = append([]byte(nil), v...)
	}
	m.writes++
	return nil
}

// Writes returns the number of Set calls so far.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
