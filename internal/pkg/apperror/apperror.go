package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a custom error type that includes an HTTP status code and an optional internal error code.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrAuthRequired is returned when an operation needs a session token and none
// is present or the portal no longer recognizes it.
var ErrAuthRequired = New(http.StatusUnauthorized, "Not authenticated")

// Network classifies failures where the upstream request could not complete
// at all (DNS, connect, timeout, cancelled context).
func Network(err error) *AppError {
	return Wrap(err, http.StatusBadGateway, "upstream portal unreachable")
}

// Upstream classifies non-success HTTP responses from the portal that carried
// no usable message body.
func Upstream(status int) *AppError {
	return New(http.StatusBadGateway, fmt.Sprintf("upstream portal returned status %d", status))
}

// UpstreamMessage classifies responses where the portal supplied a
// human-readable message worth surfacing to the caller as-is.
func UpstreamMessage(status int, message string) *AppError {
	return New(status, message)
}
