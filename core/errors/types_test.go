package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "translation",
		ID:       "xyz",
	}

	expected := "translation not found: xyz"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "element",
		Message: "not an element node",
	}

	expected := "validation error on field 'element': not an element node"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestInvalidReferenceError_Error(t *testing.T) {
	err := &InvalidReferenceError{Token: "16", Reason: "missing book name"}

	expected := `invalid reference "16": missing book name`
	if err.Error() != expected {
		t.Errorf("InvalidReferenceError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "getbible",
	}

	expected := "external API error from getbible: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestCacheError_Unwrap(t *testing.T) {
	base := errors.New("disk full")
	err := &CacheError{Op: "set", Key: "getBible-kjv-John 3:16", Err: base}

	if !errors.Is(err, base) {
		t.Error("CacheError should unwrap to the backend error")
	}
	if !IsCache(fmt.Errorf("fetch: %w", err)) {
		t.Error("IsCache should return true for wrapped CacheError")
	}
}

func TestIsNotFound_WrappedError(t *testing.T) {
	notFound := &NotFoundError{
		Resource: "reference",
		ID:       "John 3:16",
	}
	wrapped := fmt.Errorf("failed to fetch: %w", notFound)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should return true for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for non-NotFoundError")
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation error", &ValidationError{Field: "format"}, true},
		{"invalid reference", &InvalidReferenceError{Token: "x"}, true},
		{"wrapped invalid reference", fmt.Errorf("ctx: %w", &InvalidReferenceError{Token: "x"}), true},
		{"plain error", errors.New("boom"), false},
		{"external api", &ExternalAPIError{StatusCode: 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsExternalAPI(t *testing.T) {
	if !IsExternalAPI(&ExternalAPIError{StatusCode: 404}) {
		t.Error("IsExternalAPI should return true for ExternalAPIError")
	}
	if IsExternalAPI(&ValidationError{}) {
		t.Error("IsExternalAPI should return false for ValidationError")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("base")
	wrapped := WrapError(base, "fetch kjv")
	if wrapped.Error() != "fetch kjv: base" {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), "fetch kjv: base")
	}
	if !errors.Is(wrapped, base) {
		t.Error("WrapError should preserve the wrapped error")
	}
}
