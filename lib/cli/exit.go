// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package cli

// ExitError signals that the process should exit with a specific
// code without printing an additional error message. Used for cases
// like --version where the output has already been written.
type ExitError struct {
	// Code is the process exit code.
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string { return "exit" }

// ExitCode returns the process exit code. Main functions check for
// this method via an interface assertion before defaulting to 1.
func (e *ExitError) ExitCode() int { return e.Code }
