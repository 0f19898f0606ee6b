package external

import (
	"context"
	"fmt"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/pkg/errors"
	"weatherlookup.app/pkg/validation"
)

// StaticGeolocator always reports the configured position
type StaticGeolocator struct {
	coords weather.Coordinates
}

// NewStaticGeolocator validates coords and creates a fixed-position geolocator
func NewStaticGeolocator(lat, lon float64) (*StaticGeolocator, error) {
	if !validation.IsValidLatitude(lat) || !validation.IsValidLongitude(lon) {
		return nil, errors.NewConfigurationError(fmt.Sprintf("static position out of range: %f,%f", lat, lon), nil)
	}
	return &StaticGeolocator{coords: weather.Coordinates{Lat: lat, Lon: lon}}, nil
}

// CurrentPosition returns the configured position unless ctx is already done
func (g *StaticGeolocator) CurrentPosition(ctx context.Context) (weather.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return weather.Coordinates{}, errors.NewLocationUnavailableError("position request canceled", err)
	}
	return g.coords, nil
}
