package application

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidMood  = errors.New("invalid mood")
	ErrEmptyContent = errors.New("empty content")
	ErrInvalidID    = errors.New("invalid ID")
)

// ValidationError represents a client-side validation failure, raised before
// any request is sent
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// TransportError represents a request that never completed
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError represents a completed request the backend rejected
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: server returned %d", e.Op, e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}
