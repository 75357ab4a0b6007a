package coingecko

import (
	"encoding/json"
	"fmt"
)

// APIError represents a non-200 response from the CoinGecko API.
type APIError struct {
	// StatusCode is the HTTP status code of the failed response.
	StatusCode int
	// Detail is the value of the "error" field when the body is a JSON
	// object carrying one, otherwise the raw body text.
	Detail string
	// Body is the raw response body.
	Body []byte
}

// newAPIError builds an APIError from a failed response, extracting the
// detail from the body's "error" field when present.
func newAPIError(statusCode int, body []byte) *APIError {
	detail := string(body)

	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		detail = parsed.Error
	}

	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
		Body:       body,
	}
}

// Error implements the error interface, rendering as "<status> <detail>".
func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Detail)
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsRateLimited reports whether the error is a 429 response. The public API
// throttles aggressively, so callers commonly back off on this.
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// IsServerError reports whether the error is a 5xx response.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}
