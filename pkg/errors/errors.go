package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - errors the user can act on
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeLocationUnavailable

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeProvider
	ErrorTypeStorageCorruption
	ErrorTypeDatabase

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeLocationUnavailable:
		return "LOCATION_UNAVAILABLE_ERROR"
	case ErrorTypeProvider:
		return "PROVIDER_ERROR"
	case ErrorTypeStorageCorruption:
		return "STORAGE_CORRUPTION_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout the adapters
const (
	ValidationError          = ErrorTypeValidation
	NotFoundError            = ErrorTypeNotFound
	LocationUnavailableError = ErrorTypeLocationUnavailable
	ProviderError            = ErrorTypeProvider
	StorageCorruptionError   = ErrorTypeStorageCorruption
	DatabaseError            = ErrorTypeDatabase
	ConfigurationError       = ErrorTypeConfiguration
)

// AppError is the single error shape crossing layer boundaries.
// StatusCode is the upstream HTTP status when one was received, zero otherwise.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewStatusError reports a non-success upstream status. The status is kept on the error.
func NewStatusError(message string, statusCode int) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewLocationUnavailableError(message string, cause error) *AppError {
	return Wrap(LocationUnavailableError, message, cause)
}

// Infrastructure Error Constructors
func NewProviderError(message string, cause error) *AppError {
	return Wrap(ProviderError, message, cause)
}

func NewStorageCorruptionError(message string, cause error) *AppError {
	return Wrap(StorageCorruptionError, message, cause)
}

func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// Helper functions for error type checking

func isType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsLocationUnavailableError(err error) bool {
	return isType(err, LocationUnavailableError)
}

func IsProviderError(err error) bool {
	return isType(err, ProviderError)
}

func IsStorageCorruptionError(err error) bool {
	return isType(err, StorageCorruptionError)
}

func IsDatabaseError(err error) bool {
	return isType(err, DatabaseError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
