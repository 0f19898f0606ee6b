// Package api exposes the lookup controller over HTTP.
// Intent endpoints answer with the resulting view state; lookup errors live inside that state.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// LookupController is the slice of the lookup controller the HTTP adapter drives
type LookupController interface {
	SetQuery(text string)
	SubmitCity(ctx context.Context, city string) lookup.Outcome
	SelectHistory(ctx context.Context, name string) lookup.Outcome
	SubmitLocation(ctx context.Context) lookup.Outcome
	NextHours() int
	PreviousHours() int
	View() lookup.View
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	controller       LookupController
	healthChecker    ports.SystemHealthChecker
	metricsCollector MetricsCollector
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	Controller       LookupController
	HealthChecker    ports.SystemHealthChecker
	MetricsCollector MetricsCollector
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		controller:       opts.Controller,
		healthChecker:    opts.HealthChecker,
		metricsCollector: opts.MetricsCollector,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("lookup controller is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.PUT("/query", s.setQuery)
		api.POST("/search", s.search)
		api.POST("/search/location", s.searchLocation)
		api.POST("/history/select", s.selectHistory)
		api.POST("/hourly/next", s.nextHours)
		api.POST("/hourly/previous", s.previousHours)
		api.GET("/health", s.getHealth)
		api.GET("/stats", s.getStats)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
