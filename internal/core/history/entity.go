package history

import (
	"time"

	"weatherlookup.app/internal/core/weather"
)

// DefaultStorageKey is the storage key holding the serialized history
const DefaultStorageKey = "weatherSearchHistory"

// Entry is a previously looked-up location and the time of its most recent lookup
type Entry struct {
	Name      string              `json:"name"`
	Country   string              `json:"country"`
	Coords    weather.Coordinates `json:"coords"`
	Timestamp time.Time           `json:"timestamp"`
}

// NewEntry creates an entry for loc touched at the given instant
func NewEntry(loc weather.Location, at time.Time) Entry {
	return Entry{
		Name:      loc.Name,
		Country:   loc.Country,
		Coords:    loc.Coords,
		Timestamp: at.UTC(),
	}
}

// Matches reports whether the entry identifies loc. Names and countries compare case-sensitively.
func (e Entry) Matches(loc weather.Location) bool {
	return e.Name == loc.Name && e.Country == loc.Country
}
