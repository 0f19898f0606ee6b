package infrastructure

import (
	"context"

	"weatherlookup.app/internal/ports"
)

// StorageHealthChecker pings the history storage backend
type StorageHealthChecker struct {
	store   ports.KeyValueStore
	backend string
}

func NewStorageHealthChecker(store ports.KeyValueStore, backend string) *StorageHealthChecker {
	return &StorageHealthChecker{store: store, backend: backend}
}

func (s *StorageHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "storage",
		Details: map[string]interface{}{
			"backend": s.backend,
		},
	}

	if s.store == nil {
		status.Status = "unhealthy"
		status.Error = "storage is not configured"
		return status
	}

	if err := s.store.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		status.Details["connected"] = false
		return status
	}

	status.Status = "healthy"
	status.Details["connected"] = true
	return status
}
