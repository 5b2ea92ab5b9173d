// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrKingNotFound indicates a position without a king for a side.
	// The engine treats it as corrupted state and panics with it.
	ErrKingNotFound = errors.New("king not found")

	// ErrInvalidLayout indicates a malformed layout grid or square code.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCommand indicates a driver command that is not recognised.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrBadArgument indicates a driver command with missing or malformed
	// arguments.
	ErrBadArgument = errors.New("bad argument")

	// ErrMoveRejected indicates a scripted move that the controller
	// reverted.
	ErrMoveRejected = errors.New("move rejected")
)

// LayoutError represents a layout parsing error with square context.
type LayoutError struct {
	Err error  // The underlying error
	Row int    // Row of the offending square or line (0-based)
	Col int    // Column of the offending square (0-based)
	Got string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *LayoutError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("row %d", e.Row), fmt.Sprintf("col %d", e.Col))
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
