package history

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/pkg/errors"
)

// mapStorage is an in-memory KeyValueStore used to observe persisted bytes
type mapStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapStorage() *mapStorage {
	return &mapStorage{data: make(map[string][]byte)}
}

func (m *mapStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, errors.NewNotFoundError("key not found")
	}
	return value, nil
}

func (m *mapStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mapStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mapStorage) Ping(context.Context) error { return nil }

func (m *mapStorage) Close() error { return nil }

var (
	london = weather.Location{Name: "London", Country: "GB", Coords: weather.Coordinates{Lat: 51.51, Lon: -0.13}}
	paris  = weather.Location{Name: "Paris", Country: "FR", Coords: weather.Coordinates{Lat: 48.85, Lon: 2.35}}
	tokyo  = weather.Location{Name: "Tokyo", Country: "JP", Coords: weather.Coordinates{Lat: 35.69, Lon: 139.69}}
)

func newTestStore(t *testing.T, storage *mapStorage) *Store {
	store, err := NewStore(StoreDependencies{
		Storage: storage,
		Logger:  mocks.NewLenientLogger(t),
	})
	require.NoError(t, err)
	return store
}

func TestNewStore_RequiresDependencies(t *testing.T) {
	_, err := NewStore(StoreDependencies{Logger: mocks.NewLenientLogger(t)})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewStore(StoreDependencies{Storage: newMapStorage()})
	assert.True(t, errors.IsValidationError(err))
}

func TestStore_Record_SameLocationUpdatesInPlace(t *testing.T) {
	store := newTestStore(t, newMapStorage())
	first := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	store.Record(london, first)
	entries := store.Record(london, later)

	require.Len(t, entries, 1)
	assert.Equal(t, later, entries[0].Timestamp)
}

func TestStore_Record_DistinctLocationsAppend(t *testing.T) {
	store := newTestStore(t, newMapStorage())
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	store.Record(london, at)
	entries := store.Record(paris, at.Add(time.Minute))

	require.Len(t, entries, 2)
	assert.Equal(t, "London", entries[0].Name)
	assert.Equal(t, "Paris", entries[1].Name)
}

func TestStore_Record_KeepsOriginalPosition(t *testing.T) {
	store := newTestStore(t, newMapStorage())
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	store.Record(london, at)
	store.Record(paris, at.Add(time.Minute))
	entries := store.Record(london, at.Add(2*time.Minute))

	require.Len(t, entries, 2)
	assert.Equal(t, "London", entries[0].Name)
	assert.Equal(t, at.Add(2*time.Minute), entries[0].Timestamp)
	assert.Equal(t, "Paris", entries[1].Name)
}

func TestStore_Record_KeyIsCaseSensitive(t *testing.T) {
	store := newTestStore(t, newMapStorage())
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	store.Record(london, at)
	entries := store.Record(weather.Location{Name: "london", Country: "GB"}, at)

	assert.Len(t, entries, 2)
}

func TestStore_Record_ReturnsCopy(t *testing.T) {
	store := newTestStore(t, newMapStorage())

	entries := store.Record(london, time.Now())
	entries[0].Name = "Changed"

	assert.Equal(t, "London", store.Entries()[0].Name)
}

func TestStore_PersistAndLoad(t *testing.T) {
	storage := newMapStorage()
	store := newTestStore(t, storage)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	store.Record(london, at)
	entries := store.Record(paris, at.Add(time.Hour))
	require.NoError(t, store.Persist(context.Background(), entries))

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(storage.data[DefaultStorageKey], &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "London", raw[0]["name"])
	assert.Equal(t, "GB", raw[0]["country"])
	assert.Equal(t, "2024-05-01T10:00:00Z", raw[0]["timestamp"])
	assert.Equal(t, map[string]interface{}{"lat": 51.51, "lon": -0.13}, raw[0]["coords"])

	reloaded := newTestStore(t, storage)
	loaded := reloaded.Load(context.Background())

	assert.Equal(t, entries, loaded)
	assert.Equal(t, entries, reloaded.Entries())
}

func TestStore_Persist_OverwritesPriorContent(t *testing.T) {
	storage := newMapStorage()
	store := newTestStore(t, storage)
	ctx := context.Background()

	require.NoError(t, store.Persist(ctx, store.Record(london, time.Now())))
	require.NoError(t, store.Persist(ctx, nil))

	assert.Equal(t, "[]", string(storage.data[DefaultStorageKey]))
}

func TestStore_Persist_UsesConfiguredKey(t *testing.T) {
	storage := newMapStorage()
	store, err := NewStore(StoreDependencies{Storage: storage, Key: "custom", Logger: mocks.NewLenientLogger(t)})
	require.NoError(t, err)

	require.NoError(t, store.Persist(context.Background(), store.Record(london, time.Now())))

	assert.Contains(t, storage.data, "custom")
	assert.NotContains(t, storage.data, DefaultStorageKey)
}

func TestStore_Persist_StorageFailure(t *testing.T) {
	storage := mocks.NewKeyValueStore(t)
	storage.EXPECT().Set(mock.Anything, DefaultStorageKey, mock.Anything).
		Return(errors.NewDatabaseError("write failed", nil))

	store, err := NewStore(StoreDependencies{Storage: storage, Logger: mocks.NewLenientLogger(t)})
	require.NoError(t, err)

	err = store.Persist(context.Background(), store.Record(london, time.Now()))

	assert.Error(t, err)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestStore_Load_EmptyCases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(storage *mocks.KeyValueStore)
	}{
		{
			name: "MissingKey",
			setup: func(storage *mocks.KeyValueStore) {
				storage.EXPECT().Get(mock.Anything, DefaultStorageKey).Return(nil, errors.NewNotFoundError("key not found"))
			},
		},
		{
			name: "ReadFailure",
			setup: func(storage *mocks.KeyValueStore) {
				storage.EXPECT().Get(mock.Anything, DefaultStorageKey).Return(nil, errors.NewDatabaseError("connection refused", nil))
			},
		},
		{
			name: "CorruptText",
			setup: func(storage *mocks.KeyValueStore) {
				storage.EXPECT().Get(mock.Anything, DefaultStorageKey).Return([]byte("{not json"), nil)
			},
		},
		{
			name: "ObjectInsteadOfList",
			setup: func(storage *mocks.KeyValueStore) {
				storage.EXPECT().Get(mock.Anything, DefaultStorageKey).Return([]byte(`{"name":"London"}`), nil)
			},
		},
		{
			name: "EntryWithoutName",
			setup: func(storage *mocks.KeyValueStore) {
				storage.EXPECT().Get(mock.Anything, DefaultStorageKey).Return([]byte(`[{"country":"GB"}]`), nil)
			},
		},
		{
			name: "JSONNull",
			setup: func(storage *mocks.KeyValueStore) {
				storage.EXPECT().Get(mock.Anything, DefaultStorageKey).Return([]byte("null"), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := mocks.NewKeyValueStore(t)
			tt.setup(storage)

			store, err := NewStore(StoreDependencies{Storage: storage, Logger: mocks.NewLenientLogger(t)})
			require.NoError(t, err)

			assert.Empty(t, store.Load(context.Background()))
			assert.Empty(t, store.Entries())
		})
	}
}

func TestStore_Load_CorruptionReplacesPreviousEntries(t *testing.T) {
	storage := newMapStorage()
	store := newTestStore(t, storage)
	store.Record(london, time.Now())

	storage.data[DefaultStorageKey] = []byte("garbage")

	assert.Empty(t, store.Load(context.Background()))
	assert.Zero(t, store.Len())
}

func TestDecode_CorruptionIsTyped(t *testing.T) {
	_, err := Decode([]byte("not-json"))

	assert.True(t, errors.IsStorageCorruptionError(err))
}

func TestDisplayOrder(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("NewestFirst", func(t *testing.T) {
		entries := []Entry{
			NewEntry(london, at),
			NewEntry(paris, at.Add(time.Hour)),
			NewEntry(tokyo, at.Add(2*time.Hour)),
		}

		names := entryNames(DisplayOrder(entries))

		assert.Equal(t, []string{"Tokyo", "Paris", "London"}, names)
	})

	t.Run("RetouchedOlderEntryComesFirst", func(t *testing.T) {
		store := newTestStore(t, newMapStorage())
		store.Record(london, at)
		store.Record(paris, at.Add(time.Hour))
		store.Record(london, at.Add(2*time.Hour))

		assert.Equal(t, []string{"London", "Paris"}, entryNames(store.Entries()))
		assert.Equal(t, []string{"London", "Paris"}, entryNames(store.Display()))
	})

	t.Run("EqualTimestampsUseReverseStorageOrder", func(t *testing.T) {
		entries := []Entry{NewEntry(london, at), NewEntry(paris, at), NewEntry(tokyo, at)}

		assert.Equal(t, []string{"Tokyo", "Paris", "London"}, entryNames(DisplayOrder(entries)))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		entries := []Entry{NewEntry(london, at), NewEntry(paris, at.Add(time.Hour))}

		DisplayOrder(entries)

		assert.Equal(t, []string{"London", "Paris"}, entryNames(entries))
	})
}

func TestStore_ConcurrentRecord(t *testing.T) {
	store := newTestStore(t, newMapStorage())
	locations := []weather.Location{london, paris, tokyo}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Record(locations[i%len(locations)], time.Now())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3, store.Len())
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}
