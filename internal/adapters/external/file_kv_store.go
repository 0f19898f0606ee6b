package external

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"weatherlookup.app/pkg/errors"
)

const fileStoreExtension = ".json"

// FileKeyValueStore keeps one file per key under a directory.
// Writes go through a temp file and rename so readers never observe a partial value.
type FileKeyValueStore struct {
	dir   string
	mutex sync.RWMutex
}

// NewFileKeyValueStore creates dir if needed and returns a store rooted there
func NewFileKeyValueStore(dir string) (*FileKeyValueStore, error) {
	if dir == "" {
		return nil, errors.NewConfigurationError("storage directory cannot be empty", nil)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.NewDatabaseError("failed to create storage directory", err)
	}

	return &FileKeyValueStore{dir: dir}, nil
}

func (s *FileKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("key not found: " + key)
		}
		return nil, errors.NewDatabaseError("failed to read storage file", err)
	}

	return data, nil
}

func (s *FileKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.NewDatabaseError("failed to create temp storage file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.NewDatabaseError("failed to write storage file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.NewDatabaseError("failed to sync storage file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewDatabaseError("failed to close storage file", err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return errors.NewDatabaseError("failed to replace storage file", err)
	}

	return nil
}

func (s *FileKeyValueStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.NewDatabaseError("failed to delete storage file", err)
	}
	return nil
}

// Ping verifies the storage directory is still present
func (s *FileKeyValueStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return errors.NewDatabaseError("storage directory unavailable", err)
	}
	if !info.IsDir() {
		return errors.NewDatabaseError("storage path is not a directory: "+s.dir, nil)
	}
	return nil
}

func (s *FileKeyValueStore) Close() error {
	return nil
}

// path escapes key so it always names a single file inside dir
func (s *FileKeyValueStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+fileStoreExtension)
}
