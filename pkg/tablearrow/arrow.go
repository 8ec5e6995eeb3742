// Package tablearrow converts tables to and from Apache Arrow records.
//
// Typed columns map to the matching Arrow type: bool to BOOL, int to INT64,
// float to FLOAT64, string to STRING and time to TIMESTAMP(ns, UTC). Generic
// columns are written as STRING using tableio.FormatValue. Absent cells become
// nulls. Row labels, when a table has any, travel in a leading STRING field
// named RowLabelField.
package tablearrow

import (
	"errors"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/shapestone/shape-table/pkg/table"
	"github.com/shapestone/shape-table/pkg/tableio"
)

// RowLabelField names the field that carries row labels.
const RowLabelField = "__row_label__"

// ErrUnsupportedType indicates an Arrow column type with no table kind.
var ErrUnsupportedType = errors.New("unsupported arrow type")

var timestampType = &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"}

// ToRecord builds a record holding the table's cells. The caller owns the
// record and must Release it. A nil allocator uses memory.DefaultAllocator.
func ToRecord(t *table.Table, mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	rows := t.RowCount()
	var (
		fields []arrow.Field
		cols   []arrow.Array
	)
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()

	if labels := t.RowHeaders(); hasLabels(labels) {
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for _, label := range labels {
			if label == "" {
				b.AppendNull()
			} else {
				b.Append(label)
			}
		}
		fields = append(fields, arrow.Field{Name: RowLabelField, Type: arrow.BinaryTypes.String, Nullable: true})
		cols = append(cols, b.NewArray())
	}

	for i, col := range t.Columns() {
		dt := dataTypeFor(col.Kind())
		arr, err := buildArray(mem, dt, col, rows)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, col.Header(), err)
		}
		fields = append(fields, arrow.Field{Name: col.Header(), Type: dt, Nullable: true})
		cols = append(cols, arr)
	}

	schema := arrow.NewSchema(fields, nil)
	return array.NewRecord(schema, cols, int64(rows)), nil
}

func hasLabels(labels []string) bool {
	for _, l := range labels {
		if l != "" {
			return true
		}
	}
	return false
}

func dataTypeFor(kind table.Kind) arrow.DataType {
	switch kind {
	case table.KindBool:
		return arrow.FixedWidthTypes.Boolean
	case table.KindInt:
		return arrow.PrimitiveTypes.Int64
	case table.KindFloat:
		return arrow.PrimitiveTypes.Float64
	case table.KindTime:
		return timestampType
	default:
		return arrow.BinaryTypes.String
	}
}

// buildArray appends every cell of col to a builder of type dt.
func buildArray(mem memory.Allocator, dt arrow.DataType, col table.Column, rows int) (arrow.Array, error) {
	builder := array.NewBuilder(mem, dt)
	defer builder.Release()
	builder.Reserve(rows)

	for r := 0; r < rows; r++ {
		v, err := col.Get(r)
		if err != nil {
			return nil, err
		}
		if v == nil {
			builder.AppendNull()
			continue
		}
		switch b := builder.(type) {
		case *array.BooleanBuilder:
			b.Append(v.(bool))
		case *array.Int64Builder:
			b.Append(v.(int64))
		case *array.Float64Builder:
			b.Append(v.(float64))
		case *array.TimestampBuilder:
			b.Append(arrow.Timestamp(v.(time.Time).UnixNano()))
		case *array.StringBuilder:
			b.Append(tableio.FormatValue(v))
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, dt)
		}
	}
	return builder.NewArray(), nil
}

// FromRecord builds a table from a record. A leading STRING field named
// RowLabelField becomes the row labels. Narrower integer and float types
// widen to int64 and float64; DATE32, DATE64 and TIMESTAMP become times.
func FromRecord(rec arrow.Record) (*table.Table, error) {
	t := table.New()
	rows := int(rec.NumRows())
	schema := rec.Schema()

	start := 0
	if rec.NumCols() > 0 && schema.Field(0).Name == RowLabelField {
		labels, ok := rec.Column(0).(*array.String)
		if !ok {
			return nil, fmt.Errorf("%w: row labels of type %s", ErrUnsupportedType, rec.Column(0).DataType())
		}
		for r := 0; r < rows; r++ {
			label := ""
			if labels.IsValid(r) {
				label = labels.Value(r)
			}
			t.AppendRow(label)
		}
		start = 1
	} else if err := t.AppendRows(rows); err != nil {
		return nil, err
	}

	for i := start; i < int(rec.NumCols()); i++ {
		field := schema.Field(i)
		col, err := readColumn(field.Name, rec.Column(i))
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i, field.Name, err)
		}
		if err := t.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// readColumn copies an Arrow array into a typed column.
func readColumn(name string, arr arrow.Array) (table.Column, error) {
	n := arr.Len()
	switch a := arr.(type) {
	case *array.Boolean:
		return fill(table.NewBoolColumn(name), n, a.IsNull, a.Value), nil
	case *array.Int8:
		return fill(table.NewIntColumn(name), n, a.IsNull, func(i int) int64 { return int64(a.Value(i)) }), nil
	case *array.Int16:
		return fill(table.NewIntColumn(name), n, a.IsNull, func(i int) int64 { return int64(a.Value(i)) }), nil
	case *array.Int32:
		return fill(table.NewIntColumn(name), n, a.IsNull, func(i int) int64 { return int64(a.Value(i)) }), nil
	case *array.Int64:
		return fill(table.NewIntColumn(name), n, a.IsNull, a.Value), nil
	case *array.Uint8:
		return fill(table.NewIntColumn(name), n, a.IsNull, func(i int) int64 { return int64(a.Value(i)) }), nil
	case *array.Uint16:
		return fill(table.NewIntColumn(name), n, a.IsNull, func(i int) int64 { return int64(a.Value(i)) }), nil
	case *array.Uint32:
		return fill(table.NewIntColumn(name), n, a.IsNull, func(i int) int64 { return int64(a.Value(i)) }), nil
	case *array.Float32:
		return fill(table.NewFloatColumn(name), n, a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Float64:
		return fill(table.NewFloatColumn(name), n, a.IsNull, a.Value), nil
	case *array.String:
		return fill(table.NewStringColumn(name), n, a.IsNull, a.Value), nil
	case *array.LargeString:
		return fill(table.NewStringColumn(name), n, a.IsNull, a.Value), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return fill(table.NewTimeColumn(name), n, a.IsNull, func(i int) time.Time { return a.Value(i).ToTime(unit) }), nil
	case *array.Date32:
		return fill(table.NewTimeColumn(name), n, a.IsNull, func(i int) time.Time { return a.Value(i).ToTime() }), nil
	case *array.Date64:
		return fill(table.NewTimeColumn(name), n, a.IsNull, func(i int) time.Time { return a.Value(i).ToTime() }), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
	}
}

// fill resizes col to n cells and copies the non-null values.
func fill[T any](col *table.TypedColumn[T], n int, isNull func(int) bool, value func(int) T) *table.TypedColumn[T] {
	col.Resize(n)
	for i := 0; i < n; i++ {
		if !isNull(i) {
			_ = col.SetValue(i, value(i))
		}
	}
	return col
}
