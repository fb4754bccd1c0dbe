package backend

import (
	"errors"
	"fmt"
)

// ErrBulkUnsupported is returned when the backend does not implement the
// whole-day block endpoint. Callers fall back to per-hour fan-out.
var ErrBulkUnsupported = errors.New("backend does not support whole-day blocking")

// ErrUnauthorized is returned when the backend rejects the admin token.
var ErrUnauthorized = errors.New("backend rejected credentials")

// APIError is a non-2xx response from the booking backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (status=%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (status=%d)", e.Status)
}
