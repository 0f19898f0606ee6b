package external

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/time/rate"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// ErrRateLimitWait marks a call that never reached the upstream because no token was granted
var ErrRateLimitWait = stderrors.New("rate limit wait canceled")

// RateLimitedWeatherProvider wraps a WeatherProvider with client-side rate limiting.
// All four operations share one token bucket.
type RateLimitedWeatherProvider struct {
	provider ports.WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedWeatherProvider creates a new rate limited weather provider.
// rps may be fractional for less than one request per second.
func NewRateLimitedWeatherProvider(provider ports.WeatherProvider, rps float64, burst int) *RateLimitedWeatherProvider {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedWeatherProvider) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.NewProviderError(ErrRateLimitWait.Error(), stderrors.Join(ErrRateLimitWait, err))
	}
	return nil
}

// GetCurrentByCity waits for a token, then delegates
func (r *RateLimitedWeatherProvider) GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetCurrentByCity(ctx, city)
}

// GetForecastByCity waits for a token, then delegates
func (r *RateLimitedWeatherProvider) GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetForecastByCity(ctx, city)
}

// GetCurrentByCoords waits for a token, then delegates
func (r *RateLimitedWeatherProvider) GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetCurrentByCoords(ctx, lat, lon)
}

// GetForecastByCoords waits for a token, then delegates
func (r *RateLimitedWeatherProvider) GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.provider.GetForecastByCoords(ctx, lat, lon)
}

// GetProviderName returns the provider name
func (r *RateLimitedWeatherProvider) GetProviderName() string {
	return fmt.Sprintf("%s [Rate Limited]", r.provider.GetProviderName())
}
