package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents an ARKODE error code.
type ErrorCode string

const (
	ErrInvalidRequest     ErrorCode = "INVALID_REQUEST"     // 400
	ErrInvalidCredentials ErrorCode = "INVALID_CREDENTIALS" // 401
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"        // 401
	ErrNotFound           ErrorCode = "NOT_FOUND"           // 404
	ErrHTTP               ErrorCode = "HTTP_ERROR"          // status of the response
	ErrTransport          ErrorCode = "TRANSPORT"           // 502
	ErrInternal           ErrorCode = "INTERNAL"            // 500
)

// ArkodeError is a structured error with code, status, and details.
type ArkodeError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any

	cause error
}

// Error implements the error interface.
func (e *ArkodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ArkodeError) Unwrap() error {
	return e.cause
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *ArkodeError {
	return &ArkodeError{
		Code:    ErrInvalidRequest,
		Status:  http.StatusBadRequest,
		Message: msg,
	}
}

// NewInvalidCredentials creates a 401 error for a rejected login.
func NewInvalidCredentials() *ArkodeError {
	return &ArkodeError{
		Code:    ErrInvalidCredentials,
		Status:  http.StatusUnauthorized,
		Message: "Invalid credentials",
	}
}

// NewUnauthorized creates a 401 error for a missing or rejected bearer token.
func NewUnauthorized(msg string) *ArkodeError {
	return &ArkodeError{
		Code:    ErrUnauthorized,
		Status:  http.StatusUnauthorized,
		Message: msg,
	}
}

// NewNotFound creates a 404 error, e.g. "Project not found".
func NewNotFound(kind, id string) *ArkodeError {
	return &ArkodeError{
		Code:    ErrNotFound,
		Status:  http.StatusNotFound,
		Message: kind + " not found",
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewHTTP creates an error for a response outside the 2xx range.
func NewHTTP(status int, method, path string, body string) *ArkodeError {
	details := map[string]any{"method": method, "path": path}
	if body != "" {
		details["body"] = body
	}
	return &ArkodeError{
		Code:    ErrHTTP,
		Status:  status,
		Message: fmt.Sprintf("%s %s -> %d", method, path, status),
		Details: details,
	}
}

// NewTransport creates an error for a request that never produced a response.
func NewTransport(method, path string, err error) *ArkodeError {
	msg := fmt.Sprintf("%s %s failed", method, path)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &ArkodeError{
		Code:    ErrTransport,
		Status:  http.StatusBadGateway,
		Message: msg,
		Details: map[string]any{"method": method, "path": path},
		cause:   err,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ArkodeError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ArkodeError{
		Code:    ErrInternal,
		Status:  http.StatusInternalServerError,
		Message: msg,
		cause:   err,
	}
}

// As returns the ArkodeError in err's chain, if any.
func As(err error) (*ArkodeError, bool) {
	var aErr *ArkodeError
	if stderrors.As(err, &aErr) {
		return aErr, true
	}
	return nil, false
}

// Is checks if err (or anything it wraps) is an ArkodeError with the given code.
func Is(err error, code ErrorCode) bool {
	if aErr, ok := As(err); ok {
		return aErr.Code == code
	}
	return false
}

// StatusOf returns the HTTP status to report for err. Non-Arkode errors map to 500.
func StatusOf(err error) int {
	if aErr, ok := As(err); ok && aErr.Status > 0 {
		return aErr.Status
	}
	return http.StatusInternalServerError
}

// Wrap annotates err with a message while keeping it matchable with Is.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
