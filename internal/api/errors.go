package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single failure type for network and HTTP errors. Error()
// returns the human-readable message meant for display.
type Error struct {
	Op         string
	StatusCode int
	Status     string
	Message    string
	Timeout    bool
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error: %d %s", e.StatusCode, e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "API request failed"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError attempts to unwrap an error into an *Error.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTimeout reports whether err is an attempt that hit the client timeout.
func IsTimeout(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Timeout
}

// IsStatus reports whether err carries the given upstream status code.
func IsStatus(err error, code int) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.StatusCode == code
}

func statusError(op string, code int, message string) *Error {
	return &Error{
		Op:         op,
		StatusCode: code,
		Status:     http.StatusText(code),
		Message:    message,
	}
}
