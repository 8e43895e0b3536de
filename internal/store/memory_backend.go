package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryBackend keeps values in process memory. Used by tests and dry runs.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: map[string]string{}}
}

func (backend *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	backend.mu.RLock()
	defer backend.mu.RUnlock()
	value, ok := backend.values[key]
	return value, ok, nil
}

func (backend *MemoryBackend) Set(_ context.Context, key string, value string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	backend.values[key] = value
	return nil
}

func (backend *MemoryBackend) Delete(_ context.Context, keys ...string) error {
	backend.mu.Lock()
	defer backend.mu.Unlock()
	for _, key := range keys {
		delete(backend.values, key)
	}
	return nil
}

func (backend *MemoryBackend) Keys(_ context.Context) ([]string, error) {
	backend.mu.RLock()
	defer backend.mu.RUnlock()
	keys := make([]string, 0, len(backend.values))
	for key := range backend.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
