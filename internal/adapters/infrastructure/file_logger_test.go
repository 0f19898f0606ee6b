package infrastructure

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	for i, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %d should be valid JSON: %s", i, line)
		entries = append(entries, entry)
	}
	return entries
}

func TestFileLoggerAdapter_NewFileLoggerAdapter(t *testing.T) {
	t.Run("nested_path", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "deep", "nested", "weather.log")

		logger, err := NewFileLoggerAdapter(logPath)

		require.NoError(t, err)
		defer func() { _ = logger.Close() }()
		assert.DirExists(t, filepath.Dir(logPath))
		assert.FileExists(t, logPath)
	})

	t.Run("empty_path", func(t *testing.T) {
		logger, err := NewFileLoggerAdapter("")

		assert.Nil(t, logger)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "log file path cannot be empty")
	})

	t.Run("parent_is_a_file", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "plain")
		require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))

		logger, err := NewFileLoggerAdapter(filepath.Join(parent, "weather.log"))

		assert.Nil(t, logger)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "levels.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("", 3600)) }

	logger.Debug("Debug message", ports.F("key", "value"))
	logger.Info("Info message", ports.F("provider", "openweathermap"))
	logger.Warn("Warning message", ports.F("city", "London"), ports.F("error", "timeout"))
	logger.Error("Error message", ports.F("duration_ms", 5000))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 4)

	for i, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		assert.Equal(t, level, entries[i]["level"])
		assert.Equal(t, "2024-05-01T09:00:00Z", entries[i]["timestamp"])
	}
	assert.Equal(t, "value", entries[0]["key"])
	assert.Equal(t, "openweathermap", entries[1]["provider"])
	assert.Equal(t, "timeout", entries[2]["error"])
	assert.Equal(t, float64(5000), entries[3]["duration_ms"])
}

func TestFileLoggerAdapter_StructuredLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	logger.Info("Weather API request completed",
		ports.F("provider", "openweathermap"),
		ports.F("operation", "current_by_city"),
		ports.F("target", "London"),
		ports.F("event", "response"),
		ports.F("duration_ms", 1250),
		ports.F("temperature", 15.5),
		ports.F("description", "broken clouds"))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Weather API request completed", entry["message"])
	assert.Equal(t, "current_by_city", entry["operation"])
	assert.Equal(t, "London", entry["target"])
	assert.Equal(t, float64(1250), entry["duration_ms"])
	assert.Equal(t, 15.5, entry["temperature"])
	assert.Equal(t, "broken clouds", entry["description"])
}

func TestFileLoggerAdapter_ErrorFieldsRenderAsText(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "errors.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	logger.Error("Weather API request failed", ports.F("error", stderrors.New("connection refused")))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "connection refused", entries[0]["error"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "concurrent.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	numGoroutines := 10
	messagesPerGoroutine := 5

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				logger.Info(fmt.Sprintf("Message from goroutine %d", goroutineID),
					ports.F("goroutine_id", goroutineID),
					ports.F("message_id", j))
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	assert.Len(t, entries, numGoroutines*messagesPerGoroutine)
	for _, entry := range entries {
		assert.Contains(t, entry["message"], "Message from goroutine")
		assert.Contains(t, entry, "goroutine_id")
	}
}

func TestFileLoggerAdapter_AppendsAcrossReopen(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "append.log")

	first, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	first.Info("First message")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)
	second.Info("Second message")
	require.NoError(t, second.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 2)
	assert.Equal(t, "First message", entries[0]["message"])
	assert.Equal(t, "Second message", entries[1]["message"])

	if runtime.GOOS != "windows" {
		info, err := os.Stat(logPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	}
}

func TestFileLoggerAdapter_InvalidJSONHandling(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "invalid.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	logger.Info("Test message", ports.F("channel", make(chan int)))
	require.NoError(t, logger.Close())

	entries := readLogLines(t, logPath)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Contains(t, entries[0]["message"], "failed to marshal log entry")
}

func TestFileLoggerAdapter_WritesAfterCloseAreDropped(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "closed.log")
	logger, err := NewFileLoggerAdapter(logPath)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("ignored")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logger, err := NewFileLoggerAdapter(filepath.Join(b.TempDir(), "benchmark.log"))
	require.NoError(b, err)
	defer func() { _ = logger.Close() }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("Benchmark message", ports.F("iteration", i), ports.F("provider", "openweathermap"))
	}
}
