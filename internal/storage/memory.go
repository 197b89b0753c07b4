package storage

import (
	"context"
	"sync"

	"github.com/Suvadipmandal/tally/internal/service"
)

// MemoryStore implements service.Store with an in-process map. It backs
// tests and throwaway sessions; nothing survives the process.
type MemoryStore struct {
	docs map[service.Collection][]byte
	mu   sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[service.Collection][]byte)}
}

// Read returns a copy of the stored document, or (nil, nil) if absent.
func (m *MemoryStore) Read(ctx context.Context, col service.Collection) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.docs[col]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the collection's document with a copy of data.
func (m *MemoryStore) Write(ctx context.Context, col service.Collection, data []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.docs[col] = stored
	return nil
}

// Erase removes the collection's document; absent collections are a no-op.
func (m *MemoryStore) Erase(ctx context.Context, col service.Collection) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, col)
	return nil
}

// Migrate is a no-op for the in-memory store.
func (m *MemoryStore) Migrate(_ context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
