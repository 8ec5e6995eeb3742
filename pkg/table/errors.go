// Package table provides error types for structural table operations.
package table

import (
	"errors"
	"fmt"
)

// Common table errors
var (
	// ErrIndexOutOfRange indicates an axis index outside the valid bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrTypeMismatch indicates a cell assignment with a value of the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotFound indicates that no column header or row label matched.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCount indicates a negative row, column or element count.
	ErrInvalidCount = errors.New("invalid count")
)

// IndexError reports an index or index range outside an axis.
type IndexError struct {
	// Axis is "row", "column" or "element".
	Axis string
	// Index is the first index of the offending range.
	Index int
	// Count is the length of the range (1 for single cells).
	Count int
	// Bound is the exclusive upper bound of the axis.
	Bound int
}

// Error returns a formatted error message with the offending range.
func (e *IndexError) Error() string {
	if e.Count <= 1 {
		return fmt.Sprintf("invalid %s: %d (size %d)", e.Axis, e.Index, e.Bound)
	}
	return fmt.Sprintf("invalid %ss: %d - %d (size %d)", e.Axis, e.Index, e.Index+e.Count-1, e.Bound)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// TypeError reports a value that cannot be stored in a column.
type TypeError struct {
	// Want is the element kind of the column.
	Want Kind
	// Value is the rejected value.
	Value any
}

// Error returns a formatted error message naming both types.
func (e *TypeError) Error() string {
	return fmt.Sprintf("value of type %T is not a %s", e.Value, e.Want)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

// checkRange validates the range [index, index+count) against bound.
// A count of zero checks that index is a valid insertion point.
func checkRange(axis string, index, count, bound int) error {
	if count < 0 {
		return fmt.Errorf("%s count %d: %w", axis, count, ErrInvalidCount)
	}
	last := index + count - 1
	if index >= 0 && last < bound {
		return nil
	}
	return &IndexError{Axis: axis, Index: index, Count: count, Bound: bound}
}
