// Package table provides homogeneously typed columns.
package table

import "time"

// Column is an ordered, resizable sequence of cells of a single Kind
// with a mutable header.
//
// Absent cells read back as nil. Setting nil makes a cell absent.
type Column interface {
	// Header returns the column header ("" when unlabeled).
	Header() string
	// SetHeader replaces the column header.
	SetHeader(header string)
	// Kind returns the element kind of the column.
	Kind() Kind
	// Len returns the number of cells.
	Len() int
	// Resize truncates or pads the column with absent cells.
	Resize(n int)
	// Get returns the cell at index i, or nil if the cell is absent.
	Get(i int) (any, error)
	// Set stores v at index i.
	Set(i int, v any) error
	// Move copies the cell at src over the cell at dst.
	// Both indices must be in range.
	Move(dst, src int)
	// Clone returns a deep copy of the column.
	Clone() Column
}

// TypedColumn is the Column implementation for every Kind.
// Cells are stored in a []T with a parallel validity slice.
type TypedColumn[T any] struct {
	header string
	kind   Kind
	data   []T
	valid  []bool
}

// Kind-specific column types.
type (
	GenericColumn = TypedColumn[any]
	BoolColumn    = TypedColumn[bool]
	IntColumn     = TypedColumn[int64]
	FloatColumn   = TypedColumn[float64]
	StringColumn  = TypedColumn[string]
	TimeColumn    = TypedColumn[time.Time]
)

func newTypedColumn[T any](header string) *TypedColumn[T] {
	return &TypedColumn[T]{header: header, kind: kindOf[T]()}
}

// NewGenericColumn creates an empty column accepting any value.
func NewGenericColumn(header string) *GenericColumn { return newTypedColumn[any](header) }

// NewBoolColumn creates an empty bool column.
func NewBoolColumn(header string) *BoolColumn { return newTypedColumn[bool](header) }

// NewIntColumn creates an empty int64 column.
func NewIntColumn(header string) *IntColumn { return newTypedColumn[int64](header) }

// NewFloatColumn creates an empty float64 column.
func NewFloatColumn(header string) *FloatColumn { return newTypedColumn[float64](header) }

// NewStringColumn creates an empty string column.
func NewStringColumn(header string) *StringColumn { return newTypedColumn[string](header) }

// NewTimeColumn creates an empty time.Time column.
func NewTimeColumn(header string) *TimeColumn { return newTypedColumn[time.Time](header) }

// NewColumn creates an empty column of the given kind.
// Unknown kinds produce a generic column.
func NewColumn(kind Kind, header string) Column {
	switch kind {
	case KindBool:
		return NewBoolColumn(header)
	case KindInt:
		return NewIntColumn(header)
	case KindFloat:
		return NewFloatColumn(header)
	case KindString:
		return NewStringColumn(header)
	case KindTime:
		return NewTimeColumn(header)
	default:
		return NewGenericColumn(header)
	}
}

// Header returns the column header.
func (c *TypedColumn[T]) Header() string { return c.header }

// SetHeader replaces the column header.
func (c *TypedColumn[T]) SetHeader(header string) { c.header = header }

// Kind returns the element kind of the column.
func (c *TypedColumn[T]) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *TypedColumn[T]) Len() int { return len(c.data) }

// Resize truncates or pads the column with absent cells.
// Surviving cells keep their values. The backing arrays are only
// reallocated when n exceeds their capacity.
func (c *TypedColumn[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	old := len(c.data)
	if n <= old {
		var zero T
		for i := n; i < old; i++ {
			c.data[i] = zero // release references held by dropped cells
			c.valid[i] = false
		}
		c.data = c.data[:n]
		c.valid = c.valid[:n]
		return
	}
	if n <= cap(c.data) && n <= cap(c.valid) {
		c.data = c.data[:n]
		c.valid = c.valid[:n]
		return
	}
	data := make([]T, n)
	valid := make([]bool, n)
	copy(data, c.data)
	copy(valid, c.valid)
	c.data = data
	c.valid = valid
}

// Get returns the cell at index i, or nil if it is absent.
func (c *TypedColumn[T]) Get(i int) (any, error) {
	if err := checkRange("element", i, 1, len(c.data)); err != nil {
		return nil, err
	}
	if !c.valid[i] {
		return nil, nil
	}
	return c.data[i], nil
}

// Set stores v at index i. A nil v makes the cell absent.
// Values whose dynamic type is not the column's element type are
// rejected with a *TypeError.
func (c *TypedColumn[T]) Set(i int, v any) error {
	if err := checkRange("element", i, 1, len(c.data)); err != nil {
		return err
	}
	if v == nil {
		var zero T
		c.data[i] = zero
		c.valid[i] = false
		return nil
	}
	tv, ok := v.(T)
	if !ok {
		return &TypeError{Want: c.kind, Value: v}
	}
	c.data[i] = tv
	c.valid[i] = true
	return nil
}

// Value returns the typed cell at index i.
// The boolean is false when the cell is absent.
func (c *TypedColumn[T]) Value(i int) (T, bool, error) {
	var zero T
	if err := checkRange("element", i, 1, len(c.data)); err != nil {
		return zero, false, err
	}
	return c.data[i], c.valid[i], nil
}

// SetValue stores a typed value at index i.
func (c *TypedColumn[T]) SetValue(i int, v T) error {
	if err := checkRange("element", i, 1, len(c.data)); err != nil {
		return err
	}
	c.data[i] = v
	c.valid[i] = true
	return nil
}

// Append adds values to the end of the column.
func (c *TypedColumn[T]) Append(values ...T) {
	for _, v := range values {
		c.data = append(c.data, v)
		c.valid = append(c.valid, true)
	}
}

// Values returns a copy of the cells. Absent cells hold the zero value.
func (c *TypedColumn[T]) Values() []T {
	out := make([]T, len(c.data))
	copy(out, c.data)
	return out
}

// IsAbsent reports whether the cell at index i holds no value.
// Out-of-range indices report true.
func (c *TypedColumn[T]) IsAbsent(i int) bool {
	return i < 0 || i >= len(c.valid) || !c.valid[i]
}

// Move copies the cell at src over the cell at dst.
func (c *TypedColumn[T]) Move(dst, src int) {
	c.data[dst] = c.data[src]
	c.valid[dst] = c.valid[src]
}

// Clone returns a deep copy of the column.
func (c *TypedColumn[T]) Clone() Column {
	out := &TypedColumn[T]{
		header: c.header,
		kind:   c.kind,
		data:   make([]T, len(c.data)),
		valid:  make([]bool, len(c.valid)),
	}
	copy(out.data, c.data)
	copy(out.valid, c.valid)
	return out
}
