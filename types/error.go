package types

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a unified error code across the service.
type ErrorCode string

// Request error codes
const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrUnprocessable  ErrorCode = "UNPROCESSABLE"
	ErrAuthentication ErrorCode = "AUTHENTICATION"
	ErrUnauthorized   ErrorCode = "UNAUTHORIZED"
	ErrForbidden      ErrorCode = "FORBIDDEN"
	ErrRateLimited    ErrorCode = "RATE_LIMITED"
)

// Guardrail error codes
const (
	ErrValidatorNotFound      ErrorCode = "VALIDATOR_NOT_FOUND"
	ErrInvalidGuardrailConfig ErrorCode = "INVALID_GUARDRAIL_CONFIG"
)

// Service error codes
const (
	ErrTimeout            ErrorCode = "TIMEOUT"
	ErrInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// httpStatusByCode maps error codes to their default HTTP status.
var httpStatusByCode = map[ErrorCode]int{
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnprocessable:          http.StatusUnprocessableEntity,
	ErrAuthentication:         http.StatusUnauthorized,
	ErrUnauthorized:           http.StatusUnauthorized,
	ErrForbidden:              http.StatusForbidden,
	ErrRateLimited:            http.StatusTooManyRequests,
	ErrValidatorNotFound:      http.StatusBadRequest,
	ErrInvalidGuardrailConfig: http.StatusBadRequest,
	ErrTimeout:                http.StatusGatewayTimeout,
	ErrInternalError:          http.StatusInternalServerError,
	ErrServiceUnavailable:     http.StatusServiceUnavailable,
}

// Error represents a structured error with code, message, and metadata.
type Error struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"http_status,omitempty"`
	Retryable  bool      `json:"retryable"`
	Details    []string  `json:"details,omitempty"`
	Cause      error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
// The HTTP status is resolved from the code.
func NewError(code ErrorCode, message string) *Error {
	status, ok := httpStatusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	return &Error{Code: code, Message: message, HTTPStatus: status}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithHTTPStatus overrides the HTTP status code.
func (e *Error) WithHTTPStatus(status int) *Error {
	e.HTTPStatus = status
	return e
}

// WithRetryable marks the error as retryable.
func (e *Error) WithRetryable(retryable bool) *Error {
	e.Retryable = retryable
	return e
}

// WithDetails attaches per-item detail messages to the error.
func (e *Error) WithDetails(details ...string) *Error {
	e.Details = append(e.Details, details...)
	return e
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Retryable
	}
	return false
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}
