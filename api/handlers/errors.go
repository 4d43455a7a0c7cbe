// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	coreerrors "feedfilter-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Only input errors reach clients as 4xx; source failures never surface here.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *coreerrors.ValidationError
	if errors.As(err, &validationErr) {
		return huma.Error400BadRequest("Invalid query", &huma.ErrorDetail{
			Location: "body." + validationErr.Field,
			Message:  validationErr.Message,
		})
	}

	if coreerrors.IsConfig(err) {
		return huma.Error503ServiceUnavailable("Source list unavailable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
