package services

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing is returned when a guild has not run configure yet
	ErrConfigurationMissing = errors.New("ticket system is not configured for this guild")

	// ErrNotATicketChannel is returned when close is used outside a ticket channel
	ErrNotATicketChannel = errors.New("channel is not a ticket channel")
)

// ValidationError reports invalid user input. The message is safe to show to users.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExternalPlatformError wraps a failed chat platform call
type ExternalPlatformError struct {
	Op  string
	Err error
}

func (e *ExternalPlatformError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *ExternalPlatformError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed store operation
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
