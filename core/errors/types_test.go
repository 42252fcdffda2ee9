package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFetchError_Error(t *testing.T) {
	err := &FetchError{
		URL: "https://example.com",
		Err: errors.New("connection refused"),
	}

	expected := "failed to fetch https://example.com: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	inner := errors.New("timeout")
	err := &FetchError{URL: "https://example.com", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped navigation error")
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "url",
		Message: "invalid format",
	}

	expected := "validation error on field 'url': invalid format"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "inference",
	}

	expected := "external API error from inference: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestIsFetch(t *testing.T) {
	fetchErr := &FetchError{URL: "https://example.com", Err: errors.New("nav failed")}

	if !IsFetch(fetchErr) {
		t.Error("IsFetch should return true for FetchError")
	}
	if !IsFetch(fmt.Errorf("wrapped: %w", fetchErr)) {
		t.Error("IsFetch should return true for wrapped FetchError")
	}
	if IsFetch(errors.New("plain error")) {
		t.Error("IsFetch should return false for plain error")
	}
}

func TestIsValidation(t *testing.T) {
	valErr := &ValidationError{Field: "html", Message: "empty"}

	if !IsValidation(valErr) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("plain error")) {
		t.Error("IsValidation should return false for plain error")
	}
}

func TestIsExternalAPI(t *testing.T) {
	apiErr := &ExternalAPIError{StatusCode: 500, Message: "boom", API: "inference"}

	if !IsExternalAPI(apiErr) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
	if IsExternalAPI(errors.New("plain error")) {
		t.Error("IsExternalAPI should return false for plain error")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError should return nil for nil error")
	}

	inner := errors.New("inner")
	wrapped := WrapError(inner, "context")
	if wrapped == nil {
		t.Fatal("WrapError returned nil for non-nil error")
	}
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error should unwrap to the inner error")
	}
	if wrapped.Error() != "context: inner" {
		t.Errorf("wrapped error message = %q, want %q", wrapped.Error(), "context: inner")
	}
}
