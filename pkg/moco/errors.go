package moco

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors matched by APIError through errors.Is.
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrUnprocessable = errors.New("unprocessable entity")
	ErrRateLimited   = errors.New("rate limited")
	ErrServer        = errors.New("server error")

	ErrInvalidDateRange  = errors.New("date range requires both a start and an end date")
	ErrUnsupportedMethod = errors.New("unsupported http method")
	ErrUnknownEndpoint   = errors.New("unknown endpoint")
	ErrMissingPathParam  = errors.New("missing path parameter")
)

// APIError is returned for every non-2xx response from Moco.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("moco: %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("moco: %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap maps the status code onto one of the package sentinels.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case e.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.StatusCode >= 500:
		return ErrServer
	}
	return nil
}

// newAPIError builds an APIError, pulling a message out of the usual Moco
// error payloads ({"message": ...} or {"errors": {...}}) when present.
func newAPIError(method, path string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Body:       body,
	}

	var payload struct {
		Message string         `json:"message"`
		Error   string         `json:"error"`
		Errors  map[string]any `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Error != "":
			apiErr.Message = payload.Error
		case len(payload.Errors) > 0:
			parts := make([]string, 0, len(payload.Errors))
			for field, msg := range payload.Errors {
				parts = append(parts, fmt.Sprintf("%s: %v", field, msg))
			}
			apiErr.Message = strings.Join(parts, "; ")
		}
	} else if len(body) > 0 && len(body) <= 512 {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}

// ValidationError is returned before any request is issued when the
// parameters of a call are inconsistent.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("moco: invalid parameter %q: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
