package ports

import (
	"context"

	"weatherlookup.app/internal/core/weather"
)

// Geolocator defines the contract for one-shot position acquisition.
// A denial or failure is reported as a LocationUnavailableError.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (weather.Coordinates, error)
}
