// Package tableio provides error types and recovery modes for reading tables.
package tableio

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-table/internal/parser"
)

// BadLineMode specifies how Open handles malformed data lines.
type BadLineMode int

const (
	// BadLineModeError returns an error on the first malformed line (default).
	BadLineModeError BadLineMode = iota
	// BadLineModeWarn reports the line to the warning handler and skips it.
	BadLineModeWarn
	// BadLineModeSkip silently skips malformed lines.
	BadLineModeSkip
)

// String returns the string representation of BadLineMode.
func (m BadLineMode) String() string {
	switch m {
	case BadLineModeError:
		return "error"
	case BadLineModeWarn:
		return "warn"
	case BadLineModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("BadLineMode(%d)", m)
	}
}

// WarningHandler is a callback invoked for every line skipped in BadLineModeWarn.
type WarningHandler func(line int, message string)

var (
	// ErrUnbalancedQuote indicates a quoted run that is not closed before the end of the line.
	ErrUnbalancedQuote = parser.ErrUnbalancedQuote

	// ErrRowLength indicates a data line whose field count differs from the first line.
	ErrRowLength = errors.New("row length mismatch")

	// ErrSourceUnavailable indicates a source that could not be read or a sink that could not be written.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrInvalidOptions indicates an Options value that failed validation.
	ErrInvalidOptions = errors.New("invalid options")
)

// ParseError represents a failure to read a line of delimited text.
type ParseError struct {
	// Line is the physical line where the error occurred (1-indexed).
	Line int
	// Column is the rune column of the error within the line (1-indexed), or 0
	// when unknown.
	Column int
	// Field is the field number within the line (1-indexed), or 0 when the error
	// concerns the whole line.
	Field int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	switch {
	case e.Column > 0:
		return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
	case e.Field > 0:
		return fmt.Sprintf("line %d, field %d: %v", e.Line, e.Field, e.Err)
	default:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// rowLengthError builds the error reported for a line with the wrong field count.
func rowLengthError(line, got, want int) *ParseError {
	return &ParseError{
		Line: line,
		Err:  fmt.Errorf("%w: line %d is not the same length as the first line (%d fields, want %d)", ErrRowLength, line, got, want),
	}
}

// OptionsError reports an invalid option value.
type OptionsError struct {
	Field  string
	Reason string
}

// Error returns a description of the invalid option.
func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid options: %s %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidOptions.
func (e *OptionsError) Unwrap() error {
	return ErrInvalidOptions
}

// SourceError reports a byte source or sink that could not be used.
type SourceError struct {
	Path string
	Err  error
}

// Error returns the path (if any) and the underlying cause.
func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("source unavailable: %v", e.Err)
	}
	return fmt.Sprintf("source unavailable: %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrSourceUnavailable and the underlying cause.
func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}
