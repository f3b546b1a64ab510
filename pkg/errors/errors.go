package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Session
	ErrNoCredential          = fmt.Errorf("no stored credential")
	ErrCredentialNotFound    = fmt.Errorf("credential not found")
	ErrInvalidSigningMethod  = fmt.Errorf("invalid session token signing method")
	ErrInvalidSessionToken   = fmt.Errorf("invalid session token")
	ErrSessionTokenExpired   = fmt.Errorf("session token expired")
	ErrSessionNotInContext   = fmt.Errorf("session not found in request context")
	ErrWorkspaceNotAvailable = fmt.Errorf("workspace not available")

	// Remote API
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrForbidden    = fmt.Errorf("forbidden")
	ErrNotFound     = fmt.Errorf("not found")

	// Input
	ErrBadRequest = fmt.Errorf("bad request")
)

// Generic text shown when nothing more specific is known.
const GenericMessage = "Erreur"

// HttpError carries the status and user message the HTTP layer answers with.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// APIError is a non-2xx answer of the payment API.
type APIError struct {
	Status      int
	Message     string
	FieldErrors map[string][]string
	// FirstField is the field whose message came first in the response body.
	FirstField string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("payment api: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// TransportError wraps a failure to reach the payment API at all.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("payment api %s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidInputError is a local validation failure.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UserMessage returns the text to surface for err.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if fallback == "" {
		fallback = GenericMessage
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}

	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}

	var httpErr *HttpError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}

	return fallback
}

// StatusCode maps err to the status the dashboard answers with.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 400 && apiErr.Status < 600 {
			return apiErr.Status
		}
		return http.StatusBadGateway
	}

	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return http.StatusUnprocessableEntity
	}

	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, ErrNoCredential), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
