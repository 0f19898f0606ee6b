package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("connection refused")
				return NewProviderError("failed to call OpenWeatherMap", cause)
			},
			expected: "PROVIDER_ERROR: failed to call OpenWeatherMap (caused by: connection refused)",
		},
		{
			name: "StatusError",
			setup: func() *AppError {
				return NewStatusError("City not found or API error: 404", 404)
			},
			expected: "NOT_FOUND_ERROR: City not found or API error: 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("original error")
	err := NewDatabaseError("redis set operation failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("missing").Unwrap())
}

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "VALIDATION_ERROR"},
		{ErrorTypeNotFound, "NOT_FOUND_ERROR"},
		{ErrorTypeLocationUnavailable, "LOCATION_UNAVAILABLE_ERROR"},
		{ErrorTypeProvider, "PROVIDER_ERROR"},
		{ErrorTypeStorageCorruption, "STORAGE_CORRUPTION_ERROR"},
		{ErrorTypeDatabase, "DATABASE_ERROR"},
		{ErrorTypeConfiguration, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestTypeCheckers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetch current weather: %w", NewStatusError("API error: 401", 401))

	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsProviderError(wrapped))
	assert.Equal(t, 401, StatusCode(wrapped))

	assert.True(t, IsValidationError(NewValidationError("city cannot be empty")))
	assert.True(t, IsLocationUnavailableError(NewLocationUnavailableError("denied", nil)))
	assert.True(t, IsStorageCorruptionError(NewStorageCorruptionError("bad json", nil)))
	assert.True(t, IsDatabaseError(NewDatabaseError("down", nil)))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad", nil)))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain")))
	assert.Equal(t, 0, StatusCode(fmt.Errorf("plain")))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Nil",
			err:      nil,
			expected: "",
		},
		{
			name:     "AppErrorUsesMessage",
			err:      NewStatusError("City not found or API error: 404", 404),
			expected: "City not found or API error: 404",
		},
		{
			name:     "WrappedAppError",
			err:      fmt.Errorf("lookup: %w", NewProviderError("failed to decode OpenWeatherMap response", fmt.Errorf("eof"))),
			expected: "failed to decode OpenWeatherMap response",
		},
		{
			name:     "PlainError",
			err:      fmt.Errorf("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserMessage(tt.err))
		})
	}
}
