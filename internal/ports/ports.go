package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherProvider WeatherProvider
	Geolocator      Geolocator

	// History
	HistoryStorage KeyValueStore

	// Metrics
	LookupMetrics   LookupMetrics
	ProviderMetrics ProviderMetrics

	// Infrastructure
	Logger Logger
}
