package external

import (
	"context"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// InstrumentedWeatherProvider records one metrics observation per upstream call
type InstrumentedWeatherProvider struct {
	provider ports.WeatherProvider
	metrics  ports.ProviderMetrics
}

// NewInstrumentedWeatherProvider creates a new metrics decorator for weather providers
func NewInstrumentedWeatherProvider(provider ports.WeatherProvider, metrics ports.ProviderMetrics) *InstrumentedWeatherProvider {
	return &InstrumentedWeatherProvider{
		provider: provider,
		metrics:  metrics,
	}
}

// requestOutcome classifies err into a low-cardinality metrics label
func requestOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.IsValidationError(err):
		return "invalid"
	case errors.IsNotFoundError(err):
		return "status_error"
	default:
		return "provider_error"
	}
}

func observe[T any](i *InstrumentedWeatherProvider, operation string, call func() (T, error)) (T, error) {
	start := time.Now()
	result, err := call()
	i.metrics.ObserveRequest(operation, requestOutcome(err), time.Since(start))
	return result, err
}

// GetCurrentByCity delegates and records the observation
func (i *InstrumentedWeatherProvider) GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error) {
	return observe(i, "current_by_city", func() (*weather.CurrentConditions, error) {
		return i.provider.GetCurrentByCity(ctx, city)
	})
}

// GetForecastByCity delegates and records the observation
func (i *InstrumentedWeatherProvider) GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error) {
	return observe(i, "forecast_by_city", func() (*weather.Forecast, error) {
		return i.provider.GetForecastByCity(ctx, city)
	})
}

// GetCurrentByCoords delegates and records the observation
func (i *InstrumentedWeatherProvider) GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	return observe(i, "current_by_coords", func() (*weather.CurrentConditions, error) {
		return i.provider.GetCurrentByCoords(ctx, lat, lon)
	})
}

// GetForecastByCoords delegates and records the observation
func (i *InstrumentedWeatherProvider) GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	return observe(i, "forecast_by_coords", func() (*weather.Forecast, error) {
		return i.provider.GetForecastByCoords(ctx, lat, lon)
	})
}

// GetProviderName returns the wrapped provider's name
func (i *InstrumentedWeatherProvider) GetProviderName() string {
	return i.provider.GetProviderName()
}
