package ports

import (
	"context"

	"weatherlookup.app/internal/core/weather"
)

// WeatherProvider defines the contract for weather data providers.
// Implementations issue exactly one upstream request per call: no retries, no caching.
type WeatherProvider interface {
	GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error)
	GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error)
	GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error)
	GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error)
	GetProviderName() string
}
