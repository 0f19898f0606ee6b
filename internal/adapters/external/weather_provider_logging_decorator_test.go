package external

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
)

// Simple test using concrete implementations instead of mocks
func TestWeatherProviderLoggingDecorator_BasicFunctionality(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "test-provider",
		current: stubConditions("TestCity", 22.0),
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetCurrentByCity(context.Background(), "TestCity")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 22.0, result.Temperature)

	// Verify logging
	assert.Equal(t, 2, len(testLogger.entries))

	requestLog := testLogger.entries[0]
	assert.Equal(t, "INFO", requestLog.level)
	assert.Equal(t, "Weather API request started", requestLog.message)
	assert.Equal(t, "test-provider", requestLog.fields["provider"])
	assert.Equal(t, "current_by_city", requestLog.fields["operation"])
	assert.Equal(t, "TestCity", requestLog.fields["target"])
	assert.Equal(t, "request", requestLog.fields["event"])

	responseLog := testLogger.entries[1]
	assert.Equal(t, "INFO", responseLog.level)
	assert.Equal(t, "Weather API request completed", responseLog.message)
	assert.Equal(t, "response", responseLog.fields["event"])
	assert.Equal(t, 22.0, responseLog.fields["temperature"])
	assert.Equal(t, 60, responseLog.fields["humidity"])
	assert.Equal(t, "clear sky", responseLog.fields["description"])
	assert.Contains(t, responseLog.fields, "duration_ms")

	assert.Equal(t, "logged(test-provider)", decorator.GetProviderName())
}

func TestWeatherProviderLoggingDecorator_ErrorHandling(t *testing.T) {
	testProvider := &testWeatherProvider{
		name: "error-provider",
		err:  errors.New("API rate limit exceeded"),
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetForecastByCity(context.Background(), "InvalidCity")

	assert.Error(t, err)
	assert.Equal(t, "API rate limit exceeded", err.Error())
	assert.Nil(t, result)

	assert.Equal(t, 2, len(testLogger.entries))

	errorLog := testLogger.entries[1]
	assert.Equal(t, "ERROR", errorLog.level)
	assert.Equal(t, "Weather API request failed", errorLog.message)
	assert.Equal(t, "error-provider", errorLog.fields["provider"])
	assert.Equal(t, "forecast_by_city", errorLog.fields["operation"])
	assert.Equal(t, "InvalidCity", errorLog.fields["target"])
	assert.Equal(t, "error", errorLog.fields["event"])
	assert.Equal(t, "API rate limit exceeded", errorLog.fields["error"])
	assert.Contains(t, errorLog.fields, "duration_ms")
}

func TestWeatherProviderLoggingDecorator_CoordinateOperations(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:     "test-provider",
		current:  stubConditions("London", 15),
		forecast: stubForecast("London", 16),
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	_, err := decorator.GetCurrentByCoords(context.Background(), 51.5085, -0.1257)
	assert.NoError(t, err)
	forecast, err := decorator.GetForecastByCoords(context.Background(), 51.5085, -0.1257)
	assert.NoError(t, err)
	assert.Len(t, forecast.Samples, 16)

	assert.Equal(t, 4, len(testLogger.entries))
	assert.Equal(t, "51.5085,-0.1257", testLogger.entries[0].fields["target"])
	assert.Equal(t, "current_by_coords", testLogger.entries[0].fields["operation"])
	assert.Equal(t, "forecast_by_coords", testLogger.entries[2].fields["operation"])
	assert.Equal(t, 16, testLogger.entries[3].fields["samples"])
}

func TestWeatherProviderLoggingDecorator_DurationTracking(t *testing.T) {
	testProvider := &testWeatherProvider{
		name:    "slow-provider",
		current: stubConditions("SlowCity", 20.0),
		delay:   10 * time.Millisecond,
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	result, err := decorator.GetCurrentByCity(context.Background(), "SlowCity")

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 2, len(testLogger.entries))

	// Verify response log has duration >= 10ms
	responseLog := testLogger.entries[1]
	duration, ok := responseLog.fields["duration_ms"].(int64)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, duration, int64(10))
}

// Test helper structs
type testWeatherProvider struct {
	mu       sync.Mutex
	name     string
	current  *weather.CurrentConditions
	forecast *weather.Forecast
	err      error
	errs     []error
	delay    time.Duration
	calls    int
}

func (p *testWeatherProvider) respond(ctx context.Context) error {
	p.mu.Lock()
	p.calls++
	err := p.err
	if len(p.errs) > 0 {
		err, p.errs = p.errs[0], p.errs[1:]
	}
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (p *testWeatherProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *testWeatherProvider) GetCurrentByCity(ctx context.Context, city string) (*weather.CurrentConditions, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.current, nil
}

func (p *testWeatherProvider) GetForecastByCity(ctx context.Context, city string) (*weather.Forecast, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) GetCurrentByCoords(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.current, nil
}

func (p *testWeatherProvider) GetForecastByCoords(ctx context.Context, lat, lon float64) (*weather.Forecast, error) {
	if err := p.respond(ctx); err != nil {
		return nil, err
	}
	return p.forecast, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

func stubConditions(city string, temp float64) *weather.CurrentConditions {
	return &weather.CurrentConditions{
		Location: weather.Location{Name: city, Country: "GB"},
		Measurements: weather.Measurements{
			Temperature: temp,
			Humidity:    60,
			Condition:   weather.Condition{Main: "Clear", Description: "clear sky"},
		},
		Timestamp: time.Now(),
	}
}

func stubForecast(city string, count int) *weather.Forecast {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	samples := make([]weather.ForecastSample, count)
	for i := range samples {
		samples[i] = weather.ForecastSample{Time: start.Add(time.Duration(i) * 3 * time.Hour)}
	}
	return &weather.Forecast{Location: weather.Location{Name: city}, Samples: samples}
}

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

// Benchmark test
func BenchmarkWeatherProviderLoggingDecorator(b *testing.B) {
	testProvider := &testWeatherProvider{
		name:    "benchmark-provider",
		current: stubConditions("BenchmarkCity", 20.0),
	}
	testLogger := &testLogger{entries: []logEntry{}}

	decorator := NewWeatherProviderLoggingDecorator(testProvider, testLogger)

	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = decorator.GetCurrentByCity(context.Background(), "BenchmarkCity")
		}
	})
}
