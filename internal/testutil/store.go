// Package testutil provides test doubles shared across packages.
package testutil

import "sync"

// MemStore is an in-memory key-value store implementing the same
// surface as store.Store. It lets session and monitor tests run
// without touching SQLite.
//
// Thread-safety: guarded by a mutex so monitor tests can poll from a
// goroutine while the test mutates keys.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Set persists value under key, overwriting any prior value.
func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get returns the value stored under key, and whether it was present.
func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Exists reports whether key has a stored value.
func (m *MemStore) Exists(key string) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Delete removes key.
func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Clear removes all keys.
func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	return nil
}
