package tableio

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-table/pkg/table"
)

// Save writes a table as delimited text.
//
// With WriteColumnHeaders a header line comes first, led by the corner text
// when row labels are written too. With WriteRowHeaders every line starts with
// its row label (empty for unlabeled rows). Cells are rendered with the
// column's formatter. Every field is passed through Quote and every line,
// including the last, ends with the row delimiter.
func Save(t *table.Table, opts Options) (string, error) {
	node, err := ToAST(t, opts)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := render(node, &buf, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Quote returns field as it must appear in delimited text. A field is wrapped
// in quotes when it is empty, contains the separator or contains the quote;
// embedded quotes are doubled.
func Quote(field string, separator, quote rune) string {
	var buf bytes.Buffer
	writeField(&buf, field, separator, quote)
	return buf.String()
}

func writeField(buf *bytes.Buffer, value string, separator, quote rune) {
	hasQuote := strings.ContainsRune(value, quote)
	if value != "" && !hasQuote && !strings.ContainsRune(value, separator) {
		buf.WriteString(value)
		return
	}
	buf.WriteRune(quote)
	if hasQuote {
		for _, ch := range value {
			if ch == quote {
				buf.WriteRune(quote)
			}
			buf.WriteRune(ch)
		}
	} else {
		buf.WriteString(value)
	}
	buf.WriteRune(quote)
}

// render writes a file node: an array of records, each an array of literal fields.
func render(node *ast.ArrayDataNode, buf *bytes.Buffer, opts Options) error {
	for _, elem := range node.Elements() {
		record, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			return fmt.Errorf("unexpected element type in table node: %T", elem)
		}
		for i, f := range record.Elements() {
			lit, ok := f.(*ast.LiteralNode)
			if !ok {
				return fmt.Errorf("unexpected element type in record: %T", f)
			}
			if i > 0 {
				buf.WriteRune(opts.columnDelimiter)
			}
			writeField(buf, literalText(lit), opts.columnDelimiter, opts.quote)
		}
		buf.WriteString(opts.rowDelimiter)
	}
	return nil
}

func literalText(lit *ast.LiteralNode) string {
	switch v := lit.Value().(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
