// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the error types shared by the jotview
// binaries: categorized ToolErrors with optional recovery hints, and
// ExitError for explicit exit codes.
package cli

import "fmt"

// ErrorCategory classifies errors so main functions can choose exit
// behavior and hints without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the operator provided invalid
	// input: bad flags, malformed config, unparseable fixtures. Fix
	// the input and rerun.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced resource does not
	// exist: unknown jotform id, missing fixtures file. Retrying
	// with the same input will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient indicates a temporary failure: the jotform
	// service is unreachable, a request timed out. Worth retrying
	// once the service is back.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, responses the client cannot make sense of.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error with an optional recovery hint.
// Use the category constructors (Validation, NotFound, Transient,
// Internal) rather than constructing it directly.
type ToolError struct {
	// Category classifies the error for exit-code and display
	// decisions.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is actionable recovery text appended to the message,
	// set via WithHint.
	Hint string
}

// Error returns the message, with the hint appended after a blank
// line when one is set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the full chain through the ToolError wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint attaches actionable recovery text and returns the same
// error for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the operator provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
