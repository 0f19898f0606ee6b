package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// CircuitBreakerParams configures CircuitBreakerWeatherProvider
type CircuitBreakerParams struct {
	MaxFailures uint32
	OpenTimeout time.Duration
	Logger      ports.Logger
}

// CircuitBreakerWeatherProvider fails fast once the upstream keeps failing.
// Only transport failures and 5xx responses count; 4xx answers and bad input never trip it.
type CircuitBreakerWeatherProvider struct {
	provider ports.WeatherProvider
	breaker  *gobreaker.CircuitBreaker
}

// NewCircuitBreakerWeatherProvider creates a new circuit breaking weather provider
func NewCircuitBreakerWeatherProvider(provider ports.WeatherProvider, params CircuitBreakerParams) *CircuitBreakerWeatherProvider {
	maxFailures := params.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	settings := gobreaker.Settings{
		Name:        provider.GetProviderName(),
		MaxRequests: 1,
		Timeout:     params.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: countsAsHealthy,
	}

	if params.Logger != nil {
		logger := params.Logger
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			logger.Warn("Weather provider circuit state changed",
				ports.F("provider", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		}
	}

	return &CircuitBreakerWeatherProvider{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

// countsAsHealthy reports whether err leaves the upstream's health untouched.
// Caller cancellations and deadlines say nothing about the upstream.
func countsAsHealthy(err error) bool {
	if err == nil || errors.IsValidationError(err) {
		return true
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, ErrRateLimitWait) {
		return true
	}
	if errors.IsNotFoundError(err) {
		return errors.StatusCode(err) < http.StatusInternalServerError
	}
	return false
}

func breakerCall[T any](c *CircuitBreakerWeatherProvider, call func() (T, error)) (T, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return call()
	})
	if err != nil {
		var zero T
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, errors.NewProviderError("weather provider temporarily unavailable", err)
		}
		return zero, err
	}
	return result.(T), nil
}

// GetCurrentByCity delegates through the breaker
func (c *CircuitBreakerWeatherProvider) GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error) {
	return breakerCall(c, func() (*weather.CurrentConditions, error) {
		return c.provider.GetCurrentByCity(ctx, city)
	})
}

// GetForecastByCity delegates through the breaker
func (c *CircuitBreakerWeatherProvider) GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error) {
	return breakerCall(c, func() (*weather.Forecast, error) {
		return c.provider.GetForecastByCity(ctx, city)
	})
}

// GetCurrentByCoords delegates through the breaker
func (c *CircuitBreakerWeatherProvider) GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	return breakerCall(c, func() (*weather.CurrentConditions, error) {
		return c.provider.GetCurrentByCoords(ctx, lat, lon)
	})
}

// GetForecastByCoords delegates through the breaker
func (c *CircuitBreakerWeatherProvider) GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	return breakerCall(c, func() (*weather.Forecast, error) {
		return c.provider.GetForecastByCoords(ctx, lat, lon)
	})
}

// State returns the breaker state, e.g. "closed" or "open"
func (c *CircuitBreakerWeatherProvider) State() string {
	return c.breaker.State().String()
}

// GetProviderName returns the provider name
func (c *CircuitBreakerWeatherProvider) GetProviderName() string {
	return fmt.Sprintf("%s [Circuit Breaker]", c.provider.GetProviderName())
}
