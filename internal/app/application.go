package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherlookup.app/internal/adapters/api"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/core/history"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/ports"
)

const startupTimeout = 10 * time.Second

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	historyStore *history.Store
	controller   *lookup.Controller

	// Adapters
	httpServer    *http.Server
	router        *gin.Engine
	healthChecker *infrastructure.SystemHealthChecker

	// Infrastructure
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("Initializing application ports...")
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}

	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	store, err := history.NewStore(history.StoreDependencies{
		Storage: a.ports.HistoryStorage,
		Key:     a.config.History.Key,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create history store: %w", err)
	}
	a.historyStore = store

	controller, err := lookup.NewController(lookup.ControllerDependencies{
		Provider:   a.ports.WeatherProvider,
		Geolocator: a.ports.Geolocator,
		History:    store,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.LookupMetrics,
	})
	if err != nil {
		return fmt.Errorf("create lookup controller: %w", err)
	}
	a.controller = controller

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	entries := controller.LoadHistory(ctx)

	slog.Info("Use cases initialized successfully", "history_entries", len(entries))
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	provider := a.ports.WeatherProvider

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		Reporter:     a.deps.Metrics(),
		ProviderName: provider.GetProviderName(),
	})

	storageHealthChecker := infrastructure.NewStorageHealthChecker(a.ports.HistoryStorage, a.config.History.StorageType.String())

	var weatherAPIHealthChecker *infrastructure.WeatherAPIHealthChecker
	if breaker := a.deps.CircuitBreaker(); breaker != nil {
		weatherAPIHealthChecker = infrastructure.NewWeatherAPIHealthChecker(provider, breaker)
	} else {
		weatherAPIHealthChecker = infrastructure.NewWeatherAPIHealthChecker(provider, nil)
	}

	a.healthChecker = infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		StorageChecker:    storageHealthChecker,
		WeatherAPIChecker: weatherAPIHealthChecker,
		Settings: map[string]interface{}{
			"units":            a.config.Weather.Units,
			"history_storage":  a.config.History.StorageType.String(),
			"history_key":      a.config.History.Key,
			"geolocation_mode": a.config.Geolocation.Mode,
			"rate_limit_rps":   a.config.Weather.RateLimitRPS,
			"circuit_breaker":  a.config.Weather.CircuitBreakerEnabled,
		},
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Controller:       a.controller,
		HealthChecker:    a.healthChecker,
		MetricsCollector: metricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	checkCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	results := a.healthChecker.CheckAll(checkCtx)
	cancel()
	if !infrastructure.Healthy(results) {
		slog.Warn("Starting with unhealthy components", "storage", results["storage"].Status, "weatherAPI", results["weatherAPI"].Status)
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.Close(); err != nil {
		return fmt.Errorf("release resources: %w", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Close releases storage and log files without touching the HTTP server
func (a *Application) Close() error {
	return a.deps.Cleanup()
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Controller returns the lookup controller shared by every front end
func (a *Application) Controller() *lookup.Controller {
	return a.controller
}

// HistoryStore returns the history store backing the controller
func (a *Application) HistoryStore() *history.Store {
	return a.historyStore
}
