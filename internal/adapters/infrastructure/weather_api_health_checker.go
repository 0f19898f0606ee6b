package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

type breakerState interface {
	State() string
}

// WeatherAPIHealthChecker reports provider availability without calling the upstream API.
// A provider exposing a circuit breaker state is degraded while the breaker is not closed.
type WeatherAPIHealthChecker struct {
	provider ports.WeatherProvider
	breaker  breakerState
}

// NewWeatherAPIHealthChecker creates a checker; breaker may be nil
func NewWeatherAPIHealthChecker(provider ports.WeatherProvider, breaker breakerState) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, breaker: breaker}
}

func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details:   map[string]interface{}{},
	}

	if w.provider == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		return status
	}
	status.Details["provider"] = w.provider.GetProviderName()

	if w.breaker != nil {
		state := w.breaker.State()
		status.Details["circuit_breaker"] = state
		if state != "closed" {
			status.Status = "degraded"
		}
	}

	return status
}
