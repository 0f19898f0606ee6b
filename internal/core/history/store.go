package history

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// Store keeps the ordered, de-duplicated lookup history.
// Storage order is insertion order; a repeat lookup updates the existing entry in place.
type Store struct {
	storage ports.KeyValueStore
	key     string
	logger  ports.Logger

	mu      sync.RWMutex
	entries []Entry
}

type StoreDependencies struct {
	Storage ports.KeyValueStore
	Key     string
	Logger  ports.Logger
}

func NewStore(deps StoreDependencies) (*Store, error) {
	if deps.Storage == nil {
		return nil, errors.NewValidationError("history storage is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	key := deps.Key
	if key == "" {
		key = DefaultStorageKey
	}

	return &Store{
		storage: deps.Storage,
		key:     key,
		logger:  deps.Logger,
	}, nil
}

// Load replaces the in-memory history with the persisted one.
// A missing key, a read failure or unparseable data all yield an empty history.
func (s *Store) Load(ctx context.Context) []Entry {
	entries, err := s.read(ctx)
	if err != nil {
		switch {
		case errors.IsNotFoundError(err):
			s.logger.Debug("No persisted history found", ports.F("key", s.key))
		case errors.IsStorageCorruptionError(err):
			s.logger.Warn("Discarding corrupt history", ports.F("key", s.key), ports.F("error", err.Error()))
		default:
			s.logger.Warn("Failed to read history", ports.F("key", s.key), ports.F("error", err.Error()))
		}
		entries = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries

	s.logger.Debug("History loaded", ports.F("key", s.key), ports.F("entries", len(entries)))
	return slices.Clone(s.entries)
}

func (s *Store) read(ctx context.Context) ([]Entry, error) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a serialized history. Anything but a JSON array of entries is corruption.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewStorageCorruptionError("history is not a valid entry list", err)
	}

	for i, entry := range entries {
		if entry.Name == "" {
			return nil, errors.NewStorageCorruptionError(fmt.Sprintf("history entry %d has no name", i), nil)
		}
	}

	return entries, nil
}

// Record touches loc at the given instant and returns the full updated sequence
func (s *Store) Record(loc weather.Location, at time.Time) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := NewEntry(loc, at)

	index := slices.IndexFunc(s.entries, func(e Entry) bool { return e.Matches(loc) })
	if index >= 0 {
		s.entries[index] = entry
	} else {
		s.entries = append(s.entries, entry)
	}

	return slices.Clone(s.entries)
}

// Persist overwrites the stored history with entries
func (s *Store) Persist(ctx context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}

	s.logger.Debug("History persisted", ports.F("key", s.key), ports.F("entries", len(entries)))
	return nil
}

// Entries returns the history in storage order
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

// Display returns the history in presentation order, see DisplayOrder
func (s *Store) Display() []Entry {
	return DisplayOrder(s.Entries())
}

// Len returns the number of distinct locations in the history
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// DisplayOrder returns entries most recently touched first.
// Entries with equal timestamps keep reverse storage order.
func DisplayOrder(entries []Entry) []Entry {
	ordered := slices.Clone(entries)
	slices.Reverse(ordered)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})
	return ordered
}
