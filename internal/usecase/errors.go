package usecase

import (
	"errors"
	"fmt"

	"moviehub/pkg/utils"
)

// Error taxonomy surfaced to the handlers. Every failure propagates; nothing
// is recovered silently and nothing is retried here.
var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrUserNotFound   = errors.New("user not found")

	// ErrDuplicateReview is the Conflict kind: both the optimistic pre-check
	// and the store constraint violation collapse to it.
	ErrDuplicateReview = errors.New("user already reviewed this movie")

	// ErrNotReviewOwner is the Forbidden kind for review mutations.
	ErrNotReviewOwner = errors.New("review belongs to another user")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError identifies the offending fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// StorageError marks an object-storage failure, a server-side error class
// distinct from catalog logic errors.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("object storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
