package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "timeout",
		Message: "must be an unsigned integer",
	}

	expected := "validation error on field 'timeout': must be an unsigned integer"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name:     "bad status",
			err:      &FetchError{Source: "http://x/feed", Kind: BadStatus, StatusCode: 503},
			expected: "fetch http://x/feed: bad_status 503",
		},
		{
			name:     "unreachable with cause",
			err:      &FetchError{Source: "http://x/feed", Kind: Unreachable, Err: errors.New("connection refused")},
			expected: "fetch http://x/feed: unreachable: connection refused",
		},
		{
			name:     "timeout without cause",
			err:      &FetchError{Source: "http://x/feed", Kind: Timeout},
			expected: "fetch http://x/feed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.expected)
			}
		})
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &FetchError{Source: "s", Kind: Unreachable, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Source: "http://x/feed", Err: errors.New("EOF")}

	expected := "malformed document from http://x/feed: EOF"
	if err.Error() != expected {
		t.Errorf("ParseError.Error() = %v, want %v", err.Error(), expected)
	}

	anonymous := &ParseError{Err: errors.New("EOF")}
	if anonymous.Error() != "malformed document: EOF" {
		t.Errorf("ParseError.Error() = %v", anonymous.Error())
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	fetch := fmt.Errorf("source 1: %w", &FetchError{Kind: Timeout})
	parse := fmt.Errorf("source 2: %w", &ParseError{Err: errors.New("bad")})
	config := fmt.Errorf("load: %w", &ConfigError{Path: "rss_config.json", Err: errors.New("missing")})
	validation := fmt.Errorf("request: %w", &ValidationError{Field: "timeout"})

	if !IsFetch(fetch) || IsFetch(parse) {
		t.Error("IsFetch mismatch")
	}
	if !IsParse(parse) || IsParse(fetch) {
		t.Error("IsParse mismatch")
	}
	if !IsConfig(config) || IsConfig(validation) {
		t.Error("IsConfig mismatch")
	}
	if !IsValidation(validation) || IsValidation(config) {
		t.Error("IsValidation mismatch")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&FetchError{Kind: BadStatus}, "bad_status"},
		{fmt.Errorf("wrapped: %w", &FetchError{Kind: Timeout}), "timeout"},
		{&ParseError{Err: errors.New("x")}, "malformed_document"},
		{&ConfigError{Err: errors.New("x")}, "config"},
		{&ValidationError{}, "validation"},
		{errors.New("plain"), "unknown"},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.expected {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.expected)
		}
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	original := errors.New("original error")
	wrapped := WrapError(original, "additional context")

	if wrapped.Error() != "additional context: original error" {
		t.Errorf("WrapError() = %v", wrapped.Error())
	}
	if !errors.Is(wrapped, original) {
		t.Error("wrapped error should match original with errors.Is")
	}
}
