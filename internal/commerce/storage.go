package commerce

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Storage.Load when no value exists for a key.
var ErrNotFound = errors.New("commerce: key not found")

// Storage persists serialized collections under string keys. Implementations
// stand in for the browser's local/session storage: one value per key,
// whole-value reads and writes.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// MemoryStorage is a mutex-guarded in-memory Storage, scoped to the
// process lifetime. Guest sessions key their cart, favorites, and tracking
// state into it under per-session keys.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage constructs an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *MemoryStorage) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.values[key] = copied
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}
