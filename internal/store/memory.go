package store

import (
	"fmt"
	"sync"
)

// MemoryStore is an in-process ValueStore. It backs tests and can be told
// to fail writes for a key.
type MemoryStore struct {
	mu       sync.Mutex
	values   map[string]string
	failures map[string]error
	writes   map[string]int
	closed   bool
}

var _ ValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values:   make(map[string]string),
		failures: make(map[string]error),
		writes:   make(map[string]int),
	}
}

func (s *MemoryStore) Read(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStoreClosed
	}
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("key '%s': %w", key, ErrRecordNotFound)
	}
	return value, nil
}

func (s *MemoryStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if err := s.failures[key]; err != nil {
		return err
	}
	s.values[key] = value
	s.writes[key]++
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// FailWrites makes every later Write to key return err. A nil err clears it.
func (s *MemoryStore) FailWrites(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[key] = err
}

// Writes returns how many successful writes key has received.
func (s *MemoryStore) Writes(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writes[key]
}

// Set seeds a value without counting it as a write.
func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}
