package external

import (
	"context"
	"sync"

	"weatherlookup.app/pkg/errors"
)

// MemoryKeyValueStore keeps values in process memory; contents vanish on exit.
type MemoryKeyValueStore struct {
	data  map[string][]byte
	mutex sync.RWMutex
}

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	s.mutex.RLock()
	value, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists {
		return nil, errors.NewNotFoundError("key not found: " + key)
	}

	return append([]byte(nil), value...), nil
}

func (s *MemoryKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

func (s *MemoryKeyValueStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryKeyValueStore) Close() error {
	return nil
}
