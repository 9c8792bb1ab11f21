package storage

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// MemoryKV is a process-local KV used when no database is available and
// for headless runs.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the value stored under key, or core.ErrNotFound.
func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("storage: %q: %w", key, core.ErrNotFound)
	}
	return v, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

var _ core.KV = (*MemoryKV)(nil)
