package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	storageChecker    ports.StorageHealthChecker
	weatherAPIChecker ports.WeatherAPIHealthChecker
	settings          map[string]interface{}
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker.
// Settings is reported verbatim under the "config" component.
type SystemHealthCheckerConfig struct {
	StorageChecker    ports.StorageHealthChecker
	WeatherAPIChecker ports.WeatherAPIHealthChecker
	Settings          map[string]interface{}
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		storageChecker:    config.StorageChecker,
		weatherAPIChecker: config.WeatherAPIChecker,
		settings:          config.Settings,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.storageChecker != nil {
		results["storage"] = s.storageChecker.Check(ctx)
	}

	if s.weatherAPIChecker != nil {
		results["weatherAPI"] = s.weatherAPIChecker.Check(ctx)
	}

	if len(s.settings) > 0 {
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details:   s.settings,
		}
	}

	return results
}

// Healthy reports whether no component is unhealthy; degraded components still count as up
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == "unhealthy" {
			return false
		}
	}
	return true
}
