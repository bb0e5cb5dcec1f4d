package rolesdk

import (
	"errors"
	"fmt"
)

// Error codes used by the roles API.
const (
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeServerError       = "server_error"
)

// APIError is a typed error produced from a non-2xx API response. It is
// used both by the server (to describe responses) and by the SDK client
// (to surface them to callers).
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "not_found").
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsNotFound reports whether err is an APIError with the not_found code.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeNotFound
}
