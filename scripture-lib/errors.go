// ABOUTME: Error types and handling for the scripture library
// ABOUTME: Translates core errors into a small set of typed library errors

package scripture

import (
	"context"
	stderrors "errors"
	"fmt"

	coreerrors "scripture-tags/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid input such as a malformed reference
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates the API has no such passage
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates the API could not be reached or failed
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParsing indicates a document or payload could not be parsed
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// fromCore classifies an error returned by the core packages
func fromCore(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *coreerrors.ExternalAPIError
	switch {
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, "invalid input").WithCause(err)
	case coreerrors.IsNotFound(err):
		return NewError(ErrorTypeNotFound, "passage not found").WithCause(err)
	case stderrors.As(err, &apiErr) && apiErr.StatusCode == 404:
		return NewError(ErrorTypeNotFound, "passage not found").WithCause(err)
	case stderrors.As(err, &apiErr):
		return NewError(ErrorTypeNetwork, "scripture API error").
			WithCause(err).
			WithContext("status", apiErr.StatusCode)
	default:
		return NewError(ErrorTypeNetwork, "fetch failed").WithCause(err)
	}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return isType(err, ErrorTypeParsing)
}
