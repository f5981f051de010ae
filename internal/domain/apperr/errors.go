package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrPoolTimeout is returned when no pooled connection became available
	// within the configured acquisition deadline.
	ErrPoolTimeout         = errors.New("connection pool timeout")
	ErrDependencyUnhealthy = errors.New("dependency unhealthy")
)

// ValidationError is an invariant violation caught before any write reaches storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Message)
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a repository-level failure. The cause is for logs only;
// clients see a generic message.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) *StorageError { return &StorageError{Op: op, Err: err} }
