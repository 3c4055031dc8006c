// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"scripture-tags/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Scripture service error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by scripture service")
		case apiErr.StatusCode == 404:
			return huma.Error404NotFound("Scripture not found", err)
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("Scripture service rejected the request", err)
		default:
			return huma.Error500InternalServerError("Unexpected scripture service response", err)
		}
	}

	if errors.IsCache(err) {
		return huma.Error503ServiceUnavailable("Cache unavailable", err)
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return huma.Error504GatewayTimeout("Request timed out", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
