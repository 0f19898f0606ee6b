package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

type fixedBreaker string

func (b fixedBreaker) State() string { return string(b) }

func TestStorageHealthChecker_Check(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		store := mocks.NewKeyValueStore(t)
		store.EXPECT().Ping(mock.Anything).Return(nil).Once()

		status := NewStorageHealthChecker(store, "redis").Check(context.Background())

		assert.Equal(t, "storage", status.Component)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "redis", status.Details["backend"])
		assert.Equal(t, true, status.Details["connected"])
		assert.Empty(t, status.Error)
	})

	t.Run("PingFails", func(t *testing.T) {
		store := mocks.NewKeyValueStore(t)
		store.EXPECT().Ping(mock.Anything).Return(errors.NewDatabaseError("Redis ping failed", nil)).Once()

		status := NewStorageHealthChecker(store, "redis").Check(context.Background())

		assert.Equal(t, "unhealthy", status.Status)
		assert.Contains(t, status.Error, "Redis ping failed")
		assert.Equal(t, false, status.Details["connected"])
	})

	t.Run("NilStore", func(t *testing.T) {
		status := NewStorageHealthChecker(nil, "file").Check(context.Background())

		assert.Equal(t, "unhealthy", status.Status)
		assert.Equal(t, "storage is not configured", status.Error)
	})
}

func TestWeatherAPIHealthChecker_Check(t *testing.T) {
	tests := []struct {
		name          string
		breaker       breakerState
		nilProvider   bool
		expected      string
		expectBreaker interface{}
	}{
		{name: "NoBreaker", expected: "healthy"},
		{name: "ClosedBreaker", breaker: fixedBreaker("closed"), expected: "healthy", expectBreaker: "closed"},
		{name: "OpenBreaker", breaker: fixedBreaker("open"), expected: "degraded", expectBreaker: "open"},
		{name: "HalfOpenBreaker", breaker: fixedBreaker("half-open"), expected: "degraded", expectBreaker: "half-open"},
		{name: "MissingProvider", nilProvider: true, expected: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var provider ports.WeatherProvider
			if !tt.nilProvider {
				weatherProvider := mocks.NewWeatherProvider(t)
				weatherProvider.EXPECT().GetProviderName().Return("openweathermap")
				provider = weatherProvider
			}

			status := NewWeatherAPIHealthChecker(provider, tt.breaker).Check(context.Background())

			assert.Equal(t, "weatherAPI", status.Component)
			assert.Equal(t, tt.expected, status.Status)
			if tt.nilProvider {
				assert.NotEmpty(t, status.Error)
				return
			}
			assert.Equal(t, "openweathermap", status.Details["provider"])
			assert.Equal(t, tt.expectBreaker, status.Details["circuit_breaker"])
		})
	}
}

type stubChecker struct {
	status ports.HealthStatus
}

func (s stubChecker) Check(ctx context.Context) ports.HealthStatus { return s.status }

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		StorageChecker:    stubChecker{status: ports.HealthStatus{Component: "storage", Status: "healthy"}},
		WeatherAPIChecker: stubChecker{status: ports.HealthStatus{Component: "weatherAPI", Status: "degraded"}},
		Settings:          map[string]interface{}{"storage_type": "file", "geolocation": "ip"},
	})

	results := checker.CheckAll(context.Background())

	assert.Len(t, results, 3)
	assert.Equal(t, "healthy", results["storage"].Status)
	assert.Equal(t, "degraded", results["weatherAPI"].Status)
	assert.Equal(t, "file", results["config"].Details["storage_type"])
	assert.True(t, Healthy(results))
}

func TestSystemHealthChecker_PartialConfiguration(t *testing.T) {
	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		StorageChecker: stubChecker{status: ports.HealthStatus{Component: "storage", Status: "unhealthy"}},
	})

	results := checker.CheckAll(context.Background())

	assert.Len(t, results, 1)
	assert.False(t, Healthy(results))
}

func TestMetricsCollectorAdapter_GetMetrics(t *testing.T) {
	reporter := stubReporter{stats: ports.LookupStats{
		Lookups:     map[string]int64{"city/success": 2},
		Requests:    map[string]int64{"current_by_city/success": 2},
		HistorySize: 2,
	}}
	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{Reporter: reporter, ProviderName: "openweathermap"})

	metrics, err := collector.GetMetrics(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "openweathermap", metrics["provider"])
	assert.Equal(t, map[string]int64{"city/success": 2}, metrics["lookups"])
	assert.Equal(t, 2, metrics["history_size"])

	bare, err := NewMetricsCollectorAdapter(MetricsCollectorConfig{ProviderName: "x"}).GetMetrics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"provider": "x"}, bare)
}

type stubReporter struct {
	stats ports.LookupStats
}

func (s stubReporter) GetStats() ports.LookupStats { return s.stats }
