// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// wrong argument count, unparseable values.
	CategoryValidation ErrorCategory = "validation"

	// CategoryUnavailable indicates the daemon could not be reached.
	CategoryUnavailable ErrorCategory = "unavailable"

	// CategoryInternal indicates an unexpected failure, such as a
	// reply the CLI could not decode.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error with an optional hint telling the
// user what to do about it. It wraps an inner error, preserving the
// chain for errors.Is and errors.As.
type ToolError struct {
	Category ErrorCategory
	Err      error
	Hint     string
}

// Error returns the underlying message followed by the hint, if any.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint attaches a hint and returns e for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Unavailable creates an error for a daemon that could not be reached.
func Unavailable(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryUnavailable, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
