package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherlookup.app/internal/ports"
)

type LookupMetricsCollector struct {
	Lookups          *prometheus.CounterVec
	ProviderRequests *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
	HistorySize      prometheus.Gauge
}

var (
	globalCollector *LookupMetricsCollector
	collectorOnce   sync.Once
)

func getCollector() *LookupMetricsCollector {
	collectorOnce.Do(func() {
		globalCollector = &LookupMetricsCollector{
			Lookups: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_lookups_total",
					Help: "The total number of weather lookups by kind and outcome",
				},
				[]string{"kind", "outcome"},
			),
			ProviderRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weather_provider_requests_total",
					Help: "The total number of weather provider requests",
				},
				[]string{"operation", "outcome"},
			),
			ProviderLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weather_provider_request_duration_seconds",
					Help:    "Weather provider request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"operation"},
			),
			HistorySize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "weather_history_entries",
					Help: "Number of entries in the search history",
				},
			),
		}
	})
	return globalCollector
}

// LookupMetrics records lookup and provider activity in prometheus and keeps
// local totals so a snapshot can be served without scraping.
type LookupMetrics struct {
	collector   *LookupMetricsCollector
	mu          sync.RWMutex
	lookups     map[string]int64
	requests    map[string]int64
	historySize int
	lastUpdated time.Time
}

func NewLookupMetrics() *LookupMetrics {
	return &LookupMetrics{
		collector: getCollector(),
		lookups:   make(map[string]int64),
		requests:  make(map[string]int64),
	}
}

func (m *LookupMetrics) RecordLookup(kind, outcome string) {
	m.collector.Lookups.WithLabelValues(kind, outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups[kind+"/"+outcome]++
	m.lastUpdated = time.Now()
}

func (m *LookupMetrics) SetHistorySize(size int) {
	m.collector.HistorySize.Set(float64(size))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.historySize = size
	m.lastUpdated = time.Now()
}

func (m *LookupMetrics) ObserveRequest(operation, outcome string, duration time.Duration) {
	m.collector.ProviderRequests.WithLabelValues(operation, outcome).Inc()
	m.collector.ProviderLatency.WithLabelValues(operation).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[operation+"/"+outcome]++
	m.lastUpdated = time.Now()
}

func (m *LookupMetrics) GetStats() ports.LookupStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := ports.LookupStats{
		Lookups:     make(map[string]int64, len(m.lookups)),
		Requests:    make(map[string]int64, len(m.requests)),
		HistorySize: m.historySize,
		LastUpdated: m.lastUpdated,
	}
	for key, count := range m.lookups {
		stats.Lookups[key] = count
	}
	for key, count := range m.requests {
		stats.Requests[key] = count
	}
	return stats
}
