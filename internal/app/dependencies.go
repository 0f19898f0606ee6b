package app

import (
	"fmt"
	"log/slog"
	"time"

	"weatherlookup.app/internal/adapters/database"
	"weatherlookup.app/internal/adapters/external"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/metrics"
)

type DependencyContainer struct {
	config     *config.Config
	ports      *ports.ApplicationPorts
	metrics    *metrics.LookupMetrics
	breaker    *external.CircuitBreakerWeatherProvider
	fileLogger *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{
		config:  cfg,
		metrics: metrics.NewLookupMetrics(),
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(slog.Default())

	storage, err := c.initializeStorage()
	if err != nil {
		return fmt.Errorf("create history storage: %w", err)
	}
	slog.Info("History storage initialized", "type", c.config.History.StorageType.String())

	geolocator, err := c.initializeGeolocator(logger)
	if err != nil {
		_ = storage.Close()
		return fmt.Errorf("create geolocator: %w", err)
	}

	c.ports = &ports.ApplicationPorts{
		// Weather
		WeatherProvider: c.initializeProvider(logger),
		Geolocator:      geolocator,

		// History
		HistoryStorage: storage,

		// Metrics
		LookupMetrics:   c.metrics,
		ProviderMetrics: c.metrics,

		// Infrastructure
		Logger: logger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeStorage opens the configured history backend; SQL backends go through gorm
func (c *DependencyContainer) initializeStorage() (ports.KeyValueStore, error) {
	switch c.config.History.StorageType {
	case config.StorageTypeSQLite:
		db, err := database.OpenSQLite(c.config.History.SQLitePath)
		if err != nil {
			return nil, err
		}
		return database.NewKeyValueRepositoryAdapter(db), nil
	case config.StorageTypePostgres:
		db, err := database.OpenPostgres(&c.config.Database)
		if err != nil {
			return nil, err
		}
		return database.NewKeyValueRepositoryAdapter(db), nil
	default:
		return external.NewKeyValueStoreFactory().CreateKeyValueStore(&c.config.History, &c.config.Redis)
	}
}

func (c *DependencyContainer) initializeGeolocator(logger ports.Logger) (ports.Geolocator, error) {
	geo := c.config.Geolocation

	switch geo.Mode {
	case config.GeolocationModeIP:
		return external.NewIPGeolocator(external.IPGeolocatorParams{
			URL:     geo.IPURL,
			Timeout: time.Duration(geo.TimeoutSeconds) * time.Second,
			Logger:  logger,
		}), nil
	case config.GeolocationModeStatic:
		geolocator, err := external.NewStaticGeolocator(geo.Lat, geo.Lon)
		if err != nil {
			return nil, err
		}
		return geolocator, nil
	default:
		slog.Info("Geolocation disabled", "mode", geo.Mode)
		return nil, nil
	}
}

// initializeProvider builds the decorator chain around OpenWeatherMap:
// circuit breaker, rate limit, metrics, then request logging outermost.
// The breaker only sees calls that actually went upstream.
func (c *DependencyContainer) initializeProvider(logger ports.Logger) ports.WeatherProvider {
	weatherCfg := c.config.Weather

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  weatherCfg.APIKey,
		BaseURL: weatherCfg.BaseURL,
		Units:   weatherCfg.Units,
		Timeout: time.Duration(weatherCfg.HTTPTimeoutSeconds) * time.Second,
		Logger:  logger,
	})

	if weatherCfg.CircuitBreakerEnabled {
		c.breaker = external.NewCircuitBreakerWeatherProvider(provider, external.CircuitBreakerParams{
			MaxFailures: uint32(weatherCfg.CircuitBreakerFailures),
			OpenTimeout: time.Duration(weatherCfg.CircuitBreakerTimeout) * time.Second,
			Logger:      logger,
		})
		provider = c.breaker
	}

	if weatherCfg.RateLimitRPS > 0 {
		provider = external.NewRateLimitedWeatherProvider(provider, weatherCfg.RateLimitRPS, weatherCfg.RateLimitBurst)
		slog.Info("Weather provider rate limiting enabled",
			"rps", weatherCfg.RateLimitRPS,
			"burst", weatherCfg.RateLimitBurst)
	}

	provider = external.NewInstrumentedWeatherProvider(provider, c.metrics)

	if weatherCfg.EnableLogging {
		var providerLogger ports.Logger = logger
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", weatherCfg.LogFilePath)
		}

		provider = external.NewWeatherProviderLoggingDecorator(provider, providerLogger)
		slog.Info("Weather provider logging enabled")
	}

	return provider
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the collector backing both lookup and provider metrics
func (c *DependencyContainer) Metrics() *metrics.LookupMetrics {
	return c.metrics
}

// CircuitBreaker returns the breaker in the provider chain, or nil when disabled
func (c *DependencyContainer) CircuitBreaker() *external.CircuitBreakerWeatherProvider {
	return c.breaker
}

// Cleanup closes history storage and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if c.ports != nil && c.ports.HistoryStorage != nil {
		if err := c.ports.HistoryStorage.Close(); err != nil {
			slog.Warn("Error closing history storage", "error", err)
			firstErr = err
		}
	}

	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil {
			slog.Warn("Error closing provider log file", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
