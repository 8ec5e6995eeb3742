package tableio

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-table/pkg/table"
)

// ToAST renders a table as a shape-core node without serializing it: an
// *ast.ArrayDataNode of records, each an *ast.ArrayDataNode of
// *ast.LiteralNode fields holding formatted strings. The records are the
// lines Save would write, before quoting.
func ToAST(t *table.Table, opts Options) (*ast.ArrayDataNode, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	pos := ast.Position{}
	cols := t.ColumnCount()
	records := make([]ast.SchemaNode, 0, t.RowCount()+1)

	if opts.writeColumnHeaders {
		fields := make([]ast.SchemaNode, 0, cols+1)
		if opts.writeRowHeaders {
			fields = append(fields, ast.NewLiteralNode(opts.cornerText, pos))
		}
		for _, h := range t.ColumnHeaders() {
			fields = append(fields, ast.NewLiteralNode(h, pos))
		}
		records = append(records, ast.NewArrayDataNode(fields, pos))
	}

	formatters := make([]Formatter, cols)
	for c := range formatters {
		formatters[c] = opts.formatterFor(c)
	}
	for r := 0; r < t.RowCount(); r++ {
		fields := make([]ast.SchemaNode, 0, cols+1)
		if opts.writeRowHeaders {
			label, err := t.RowHeader(r)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.NewLiteralNode(label, pos))
		}
		for c := 0; c < cols; c++ {
			v, err := t.Get(c, r)
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.NewLiteralNode(formatters[c](v), pos))
		}
		records = append(records, ast.NewArrayDataNode(fields, pos))
	}
	return ast.NewArrayDataNode(records, pos), nil
}

// FromAST builds a table from a node shaped like the output of ToAST, using
// the same header, label and parser handling as Open.
func FromAST(node ast.SchemaNode, opts Options) (*table.Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	records, err := NodeToRecords(node)
	if err != nil {
		return nil, err
	}
	b := newBuilder(opts)
	for i, fields := range records {
		if err := b.add(i+1, fields); err != nil {
			if err := b.handleBadLine(err); err != nil {
				return nil, err
			}
		}
	}
	return b.t, nil
}

// NodeToRecords flattens a table node into records of field strings.
// Literal values that are not strings are rendered with %v.
func NodeToRecords(node ast.SchemaNode) ([][]string, error) {
	file, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected *ast.ArrayDataNode, got %T", node)
	}
	records := make([][]string, 0, file.Len())
	for i, elem := range file.Elements() {
		record, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return nil, fmt.Errorf("record %d: expected *ast.ArrayDataNode, got %T", i, elem)
		}
		fields := make([]string, 0, record.Len())
		for j, f := range record.Elements() {
			lit, ok := f.(*ast.LiteralNode)
			if !ok {
				return nil, fmt.Errorf("record %d, field %d: expected *ast.LiteralNode, got %T", i, j, f)
			}
			fields = append(fields, literalText(lit))
		}
		records = append(records, fields)
	}
	return records, nil
}

// RecordsToNode builds a table node from records of field strings.
func RecordsToNode(records [][]string) *ast.ArrayDataNode {
	pos := ast.Position{}
	nodes := make([]ast.SchemaNode, len(records))
	for i, record := range records {
		fields := make([]ast.SchemaNode, len(record))
		for j, f := range record {
			fields[j] = ast.NewLiteralNode(f, pos)
		}
		nodes[i] = ast.NewArrayDataNode(fields, pos)
	}
	return ast.NewArrayDataNode(nodes, pos)
}
