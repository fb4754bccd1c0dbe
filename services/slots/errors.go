package slots

import "fmt"

// ValidationError marks faults caught before any backend request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
