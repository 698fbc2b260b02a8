package types

import (
	"errors"
	"net/http"
	"testing"
)

func TestError_ChainingAndHelpers(t *testing.T) {
	t.Parallel()

	root := errors.New("root")
	err := NewError(ErrServiceUnavailable, "engine unavailable").
		WithCause(root).
		WithRetryable(true).
		WithDetails("detail one", "detail two")

	if GetErrorCode(err) != ErrServiceUnavailable {
		t.Fatalf("expected code %s, got %s", ErrServiceUnavailable, GetErrorCode(err))
	}
	if !IsRetryable(err) {
		t.Fatalf("expected retryable")
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is unwrap to root")
	}
	if len(err.Details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(err.Details))
	}
	if got := err.Error(); got == "" {
		t.Fatalf("expected non-empty error string")
	}
}

func TestError_HTTPStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrUnprocessable, http.StatusUnprocessableEntity},
		{ErrValidatorNotFound, http.StatusBadRequest},
		{ErrInvalidGuardrailConfig, http.StatusBadRequest},
		{ErrAuthentication, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrRateLimited, http.StatusTooManyRequests},
		{ErrInternalError, http.StatusInternalServerError},
		{ErrServiceUnavailable, http.StatusServiceUnavailable},
		{ErrorCode("UNKNOWN_CODE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := NewError(tt.code, "x").HTTPStatus; got != tt.status {
			t.Fatalf("code %s: expected status %d, got %d", tt.code, tt.status, got)
		}
	}

	if got := NewError(ErrTimeout, "x").WithHTTPStatus(http.StatusRequestTimeout).HTTPStatus; got != http.StatusRequestTimeout {
		t.Fatalf("WithHTTPStatus override failed, got %d", got)
	}
}

func TestHelpers_NonStructuredError(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")
	if IsRetryable(plain) {
		t.Fatalf("plain error must not be retryable")
	}
	if GetErrorCode(plain) != "" {
		t.Fatalf("plain error must have empty code")
	}
}
