package ports

import "time"

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LookupMetrics defines the contract for lookup outcome tracking
type LookupMetrics interface {
	RecordLookup(kind, outcome string)
	SetHistorySize(size int)
}

// ProviderMetrics defines the contract for upstream request tracking
type ProviderMetrics interface {
	ObserveRequest(operation, outcome string, duration time.Duration)
}

// LookupStats is a point-in-time summary of recorded lookups
type LookupStats struct {
	Lookups     map[string]int64 `json:"lookups"`
	Requests    map[string]int64 `json:"provider_requests"`
	HistorySize int              `json:"history_size"`
	LastUpdated time.Time        `json:"last_updated"`
}

// MetricsReporter exposes collected metrics as a snapshot
type MetricsReporter interface {
	GetStats() LookupStats
}
