package external

import (
	"context"
	"fmt"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentByCity wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error) {
	return logCall(d, "current_by_city", city, currentFields, func() (*weather.CurrentConditions, error) {
		return d.provider.GetCurrentByCity(ctx, city)
	})
}

// GetForecastByCity wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error) {
	return logCall(d, "forecast_by_city", city, forecastFields, func() (*weather.Forecast, error) {
		return d.provider.GetForecastByCity(ctx, city)
	})
}

// GetCurrentByCoords wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	return logCall(d, "current_by_coords", coordsTarget(lat, lon), currentFields, func() (*weather.CurrentConditions, error) {
		return d.provider.GetCurrentByCoords(ctx, lat, lon)
	})
}

// GetForecastByCoords wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	return logCall(d, "forecast_by_coords", coordsTarget(lat, lon), forecastFields, func() (*weather.Forecast, error) {
		return d.provider.GetForecastByCoords(ctx, lat, lon)
	})
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

func logCall[T any](d *WeatherProviderLoggingDecorator, operation, target string, describe func(T) []ports.Field, call func() (T, error)) (T, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("target", target),
		ports.F("event", "request"))

	startTime := time.Now()
	result, err := call()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("operation", operation),
			ports.F("target", target),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return result, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("target", target),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	d.logger.Info("Weather API request completed", append(fields, describe(result)...)...)

	return result, nil
}

func currentFields(c *weather.CurrentConditions) []ports.Field {
	return []ports.Field{
		ports.F("location", c.Location.Name),
		ports.F("temperature", c.Temperature),
		ports.F("humidity", c.Humidity),
		ports.F("description", c.Condition.Description),
	}
}

func forecastFields(f *weather.Forecast) []ports.Field {
	return []ports.Field{
		ports.F("location", f.Location.Name),
		ports.F("samples", len(f.Samples)),
	}
}

func coordsTarget(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
