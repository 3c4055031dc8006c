// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for references, upstream API and cache failures

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// InvalidReferenceError is returned when a raw reference token fails validation
type InvalidReferenceError struct {
	Token  string
	Reason string
}

// Error implements the error interface
func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid reference %q: %s", e.Token, e.Reason)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// CacheError wraps a failure of the cache backend (not a miss)
type CacheError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface
func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed for %s: %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying backend error
func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError or an InvalidReferenceError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	var refErr *InvalidReferenceError
	return errors.As(err, &refErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsCache checks if an error is a CacheError
func IsCache(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
