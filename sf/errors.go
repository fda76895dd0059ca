// Package sf shells out to the Salesforce sfdx CLI and interprets its
// JSON responses.
//
// This file defines sentinel errors and the CommandError wrapper for
// classifying command failures. Callers use errors.Is/errors.As for typed
// assertions rather than string matching.
package sf

import (
	"errors"
	"fmt"
)

// Sentinel errors for command failure classification.
var (
	// ErrTimeout indicates the command did not finish within the timeout.
	ErrTimeout = errors.New("command timed out")

	// ErrNonZeroExit indicates the command exited with a non-zero status.
	ErrNonZeroExit = errors.New("command failed")

	// ErrMalformedResponse indicates the command succeeded but its output
	// could not be parsed as the expected JSON shape.
	ErrMalformedResponse = errors.New("malformed response")
)

// CommandError wraps a command failure with its classification.
// It preserves the underlying error in the chain for errors.As inspection.
type CommandError struct {
	// Kind is the sentinel error for classification.
	Kind error
	// CommandLine is the full command line that failed.
	CommandLine string
	// Stderr is the captured standard error text, if any.
	Stderr string
	// Err is the underlying error.
	Err error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports whether the error matches the target sentinel.
func (e *CommandError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}
