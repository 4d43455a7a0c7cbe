// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates input errors from per-source and configuration errors

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents malformed caller input.
// It is the only error kind that fails a whole request.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchErrorKind classifies why a source could not be retrieved
type FetchErrorKind string

const (
	// Unreachable covers connection and transport failures
	Unreachable FetchErrorKind = "unreachable"

	// Timeout means the fetch exceeded its per-source budget
	Timeout FetchErrorKind = "timeout"

	// BadStatus means the source answered with a non-success status
	BadStatus FetchErrorKind = "bad_status"

	// TooLarge means the body exceeded the fetcher's size limit
	TooLarge FetchErrorKind = "too_large"
)

// FetchError represents a failure to retrieve one source
type FetchError struct {
	Source     string
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Kind == BadStatus {
		return fmt.Sprintf("fetch %s: %s %d", e.Source, e.Kind, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Source, e.Kind)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a source whose content is not a valid feed
type ParseError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("malformed document: %v", e.Err)
	}
	return fmt.Sprintf("malformed document from %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents an unreadable or malformed source list
type ConfigError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("source config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsConfig checks if an error is a ConfigError
func IsConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// KindOf returns a short label for logging per-source failures
func KindOf(err error) string {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return string(fetchErr.Kind)
	}
	if IsParse(err) {
		return "malformed_document"
	}
	if IsConfig(err) {
		return "config"
	}
	if IsValidation(err) {
		return "validation"
	}
	return "unknown"
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
