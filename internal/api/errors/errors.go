package errors

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies API errors for status code mapping.
type ErrorKind string

const (
	KindBadRequest         ErrorKind = "bad_request"
	KindNotFound           ErrorKind = "not_found"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
)

// APIError is the structured error returned by every failing endpoint.
// Only the detail message goes over the wire; the kind drives the status code.
type APIError struct {
	Kind   ErrorKind `json:"-"`
	Detail string    `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Detail
}

// HTTPStatus returns the HTTP status code for the error kind.
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewBadRequestError creates a client error.
func NewBadRequestError(detail string) *APIError {
	return &APIError{
		Kind:   KindBadRequest,
		Detail: detail,
	}
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates a server error.
func NewInternalError(detail string) *APIError {
	return &APIError{
		Kind:   KindInternal,
		Detail: detail,
	}
}

// NewServiceUnavailableError creates a service unavailable error.
func NewServiceUnavailableError(detail string) *APIError {
	return &APIError{
		Kind:   KindServiceUnavailable,
		Detail: detail,
	}
}
