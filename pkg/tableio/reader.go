package tableio

import (
	"errors"
	"unicode/utf8"

	"github.com/shapestone/shape-table/internal/parser"
	"github.com/shapestone/shape-table/pkg/table"
)

// Open reads delimited text into a new table.
//
// The first line defines the shape: with ReadColumnHeaders it supplies the
// column headers, otherwise it is the first data row. With ReadRowHeaders the
// first field of every line is a row label (on the header line it is the
// corner text and is discarded). Every later line must have as many fields as
// the first. Each column's parser is resolved once, from its first data value.
//
// Text with no lines yields an empty table.
func Open(text string, opts Options) (*table.Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	b := newBuilder(opts)
	for i, line := range splitLines(text) {
		lineNum := i + 1
		fields, err := Tokenize(line, opts.columnDelimiter, opts.quote)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Line = lineNum
			}
			if err := b.handleBadLine(err); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.add(lineNum, fields); err != nil {
			if err := b.handleBadLine(err); err != nil {
				return nil, err
			}
		}
	}
	return b.t, nil
}

// Tokenize splits one line into fields. Quoted runs may contain the separator
// and doubled quotes; an unclosed run yields a *ParseError wrapping
// ErrUnbalancedQuote that points at the opening quote.
func Tokenize(line string, separator, quote rune) ([]string, error) {
	fields, err := parser.ParseLine(line, parser.Options{Separator: separator, Quote: quote})
	if err != nil {
		perr := &ParseError{Line: 1, Err: err}
		var lerr *parser.Error
		if errors.As(err, &lerr) {
			perr.Column = lerr.Column
			perr.Err = lerr.Err
		}
		return nil, perr
	}
	return fields, nil
}

// builder accumulates records into a table.
type builder struct {
	opts    Options
	t       *table.Table
	parsers []Parser
	started bool
	first   int
}

func newBuilder(opts Options) *builder {
	return &builder{opts: opts, t: table.NewOfKind(opts.kind)}
}

// add consumes the fields of one line.
func (b *builder) add(line int, fields []string) error {
	label := ""
	if b.opts.readRowHeaders && len(fields) > 0 {
		label = fields[0]
		fields = fields[1:]
	}

	if !b.started {
		b.started = true
		b.first = line
		b.parsers = make([]Parser, len(fields))
		for i := range fields {
			header := ""
			if b.opts.readColumnHeaders {
				header = fields[i]
			}
			if err := b.t.AddColumn(table.NewColumn(b.opts.kindFor(i), header)); err != nil {
				return err
			}
		}
		if b.opts.readColumnHeaders {
			return nil
		}
	} else if len(fields) != b.t.ColumnCount() {
		return rowLengthError(line, len(fields), b.t.ColumnCount())
	}

	// Guessed parsers are committed only once the whole line is stored.
	parsers := make([]Parser, len(fields))
	copy(parsers, b.parsers)
	values := make([]any, len(fields))
	for i, s := range fields {
		if parsers[i] == nil {
			parsers[i] = b.opts.parserFor(i, s)
		}
		v, err := parsers[i](s)
		if err != nil {
			return &ParseError{Line: line, Field: i + 1, Err: err}
		}
		values[i] = v
	}

	b.t.AppendRow(label)
	row := b.t.RowCount() - 1
	for i, v := range values {
		if err := b.t.Set(i, row, v); err != nil {
			_ = b.t.RemoveRow(row)
			return &ParseError{Line: line, Field: i + 1, Err: err}
		}
	}
	b.parsers = parsers
	return nil
}

// handleBadLine applies the bad-line mode to a line error. The first line is
// never skipped since it defines the table's shape.
func (b *builder) handleBadLine(err error) error {
	var perr *ParseError
	if !b.started || !errors.As(err, &perr) || perr.Line == b.first {
		return err
	}
	switch b.opts.badLineMode {
	case BadLineModeSkip:
		return nil
	case BadLineModeWarn:
		if h := b.opts.warningHandler; h != nil {
			h(perr.Line, perr.Error())
		}
		return nil
	default:
		return err
	}
}

// splitLines splits text on any line break and drops trailing empty lines.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := rune(text[i]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(text[i:])
		}
		switch r {
		case '\r':
			lines = append(lines, text[start:i])
			i += size
			if i < len(text) && text[i] == '\n' {
				i++
			}
			start = i
			continue
		case '\n', '\v', '\f', '\u0085', '\u2028', '\u2029':
			lines = append(lines, text[start:i])
			i += size
			start = i
			continue
		}
		i += size
	}
	lines = append(lines, text[start:])
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
