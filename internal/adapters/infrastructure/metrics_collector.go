package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

// MetricsCollectorAdapter serves a JSON-friendly summary of lookup metrics
type MetricsCollectorAdapter struct {
	reporter     ports.MetricsReporter
	providerName string
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	Reporter     ports.MetricsReporter
	ProviderName string
}

func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		reporter:     config.Reporter,
		providerName: config.ProviderName,
	}
}

// GetMetrics returns the current lookup summary
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{
		"provider": m.providerName,
	}

	if m.reporter != nil {
		stats := m.reporter.GetStats()
		metrics["lookups"] = stats.Lookups
		metrics["provider_requests"] = stats.Requests
		metrics["history_size"] = stats.HistorySize
		metrics["updated"] = stats.LastUpdated
	}

	return metrics, nil
}
