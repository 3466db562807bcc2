package client

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx HTTP response from the content API.
// It is never retried.
type APIError struct {
	StatusCode int
	StatusText string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %d %s: %s", e.StatusCode, e.StatusText, e.Message)
	}
	return fmt.Sprintf("API error: %d %s", e.StatusCode, e.StatusText)
}

// NetworkError is a connectivity failure or a timeout. Connectivity failures
// are retried up to the client's attempt budget before surfacing; timeouts
// surface immediately.
type NetworkError struct {
	Endpoint string
	Timeout  bool
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timeout: %s took too long", e.Endpoint)
	}
	return fmt.Sprintf("network error: unable to reach %s after %d attempt(s): %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is a response body that could not be decoded into the expected shape.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsStatus returns true if err (or any wrapped error) is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}

// IsTimeout reports whether err is a NetworkError caused by the request timeout.
func IsTimeout(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.Timeout
}

// IsNetwork reports whether err is any NetworkError, timeout included.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsParse reports whether err is a ParseError.
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
