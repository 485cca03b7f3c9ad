// Package errors provides sentinel errors and structured error details for
// the express-mod CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if cause := e.causeText(); cause != "" {
		b.WriteString("\n  Cause: ")
		b.WriteString(strings.ReplaceAll(cause, "\n", "\n    "))
		b.WriteString("\n")
	}

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// causeText returns the cause message, or "" when the cause is missing or
// only a sentinel already expressed by Type.
func (e *DetailError) causeText() string {
	if e.Cause == nil {
		return ""
	}
	for _, s := range sentinels {
		if e.Cause == s {
			return ""
		}
	}
	return strings.TrimSpace(e.Cause.Error())
}

// taggedError marks err with a sentinel without changing its message.
type taggedError struct {
	sentinel error
	err      error
}

func (t *taggedError) Error() string {
	return t.err.Error()
}

func (t *taggedError) Unwrap() []error {
	return []error{t.sentinel, t.err}
}

// NewUsageError creates a usage error for missing or unknown arguments.
func NewUsageError(message, hint string) error {
	return &DetailError{
		Type:    "invalid usage",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewExistsError creates an error for a target path that must not exist yet.
func NewExistsError(message, location, hint string) error {
	return &DetailError{
		Type:     "target exists",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrExists,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewExternalError creates an error for a failed external command.
func NewExternalError(message, location string, cause error) error {
	tagged := ErrExternal
	if cause != nil {
		tagged = &taggedError{sentinel: ErrExternal, err: cause}
	}
	return &DetailError{
		Type:     "external command failed",
		Message:  message,
		Location: location,
		Cause:    tagged,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
