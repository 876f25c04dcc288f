package store

import (
	"context"
	"sync"
)

// Ensure MemoryStore implements DocumentStore.
var _ DocumentStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory document store used in tests and as the default
// driver for throwaway local runs. Documents do not survive the process.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// Hook functions for injecting errors in tests.
	ReadFunc  func(ctx context.Context, name string) ([]byte, error)
	WriteFunc func(ctx context.Context, name string, doc []byte) error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (m *MemoryStore) Read(ctx context.Context, name string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[name]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (m *MemoryStore) Write(ctx context.Context, name string, doc []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, name, doc)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(doc))
	copy(stored, doc)
	m.docs[name] = stored
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Seed places a raw document under a collection name (for test setup).
func (m *MemoryStore) Seed(name string, doc []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = doc
}
