// ABOUTME: Maps core error types to Huma HTTP errors
// ABOUTME: Keeps status-code policy in one place for all handlers

package handlers

import (
	"errors"

	coreerrors "pagesense-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts a core error to the appropriate HTTP error. Fetch
// failures are upstream problems (502), validation failures are the
// caller's (400), external API errors depend on their status.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var fetchErr *coreerrors.FetchError
	if errors.As(err, &fetchErr) {
		return huma.Error502BadGateway("Failed to fetch page: " + fetchErr.Error())
	}

	var valErr *coreerrors.ValidationError
	if errors.As(err, &valErr) {
		return huma.Error400BadRequest(valErr.Error())
	}

	var apiErr *coreerrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error")
		default:
			return huma.Error400BadRequest("External service request error")
		}
	}

	return huma.Error500InternalServerError("Internal error")
}
