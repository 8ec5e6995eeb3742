// Package table provides the element kinds a column can hold.
package table

import (
	"fmt"
	"time"
)

// Kind identifies the element type of a column.
// The set is closed: every column in a table holds one of these kinds.
type Kind int

const (
	// KindAny columns accept any Go value.
	KindAny Kind = iota
	// KindBool columns hold bool values.
	KindBool
	// KindInt columns hold int64 values.
	KindInt
	// KindFloat columns hold float64 values.
	KindFloat
	// KindString columns hold string values.
	KindString
	// KindTime columns hold time.Time values.
	KindTime
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindAny && k <= KindTime
}

// KindOf returns the kind whose element type matches the dynamic type of v.
// Values of any other type (and nil) map to KindAny.
func KindOf(v any) Kind {
	switch v.(type) {
	case bool:
		return KindBool
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	case time.Time:
		return KindTime
	default:
		return KindAny
	}
}

// kindOf returns the kind for the element type parameter T.
func kindOf[T any]() Kind {
	var zero T
	if any(zero) == nil {
		// T is an interface type
		return KindAny
	}
	return KindOf(zero)
}
