package domain

import (
	"errors"
	"fmt"
)

// Common error types
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("no %s data", e.Entity)
	}
	return fmt.Sprintf("%s not found with ID: %s", e.Entity, e.ID)
}

// NewNotFound builds an ErrNotFound for entity/id
func NewNotFound(entity, id string) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

// IsNotFound reports whether err wraps an ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// IsValidationError reports whether err wraps a ValidationError
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ErrUnauthorized is returned when credentials or tokens are rejected by the auth provider
var ErrUnauthorized = errors.New("unauthorized")

// ErrUpstreamUnavailable is returned when the text generation credential is not configured
var ErrUpstreamUnavailable = errors.New("text generation API key not configured")

// ErrStorageNotConfigured is returned by media uploads when no bucket is set up
var ErrStorageNotConfigured = errors.New("media storage is not configured")

// ErrUpstreamFailed wraps a failure reported by an external API
type ErrUpstreamFailed struct {
	Provider string
	Err      error
}

func (e *ErrUpstreamFailed) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ErrUpstreamFailed) Unwrap() error {
	return e.Err
}
