package tableio

import (
	"runtime"
	"unicode/utf8"

	"github.com/shapestone/shape-table/pkg/table"
)

// ColumnOptions overrides how a single column is read and written. A nil
// field, or KindAny, falls back to the table-wide setting.
type ColumnOptions struct {
	Parser    Parser
	Formatter Formatter
	Kind      table.Kind
}

// Options configures Open and Save. The zero value is not useful; start from
// DefaultOptions. Options is a value: every With method returns a modified
// copy and leaves the receiver untouched.
type Options struct {
	columnDelimiter    rune
	quote              rune
	rowDelimiter       string
	cornerText         string
	readColumnHeaders  bool
	writeColumnHeaders bool
	readRowHeaders     bool
	writeRowHeaders    bool
	guessParser        bool
	parser             Parser
	formatter          Formatter
	kind               table.Kind
	columns            map[int]ColumnOptions
	badLineMode        BadLineMode
	warningHandler     WarningHandler
}

// DefaultOptions returns the default configuration: comma-delimited,
// double-quoted, platform line endings, corner text `\`, column and row
// headers read and written, parsers guessed from the data.
func DefaultOptions() Options {
	return Options{
		columnDelimiter:    ',',
		quote:              '"',
		rowDelimiter:       platformLineSeparator(),
		cornerText:         `\`,
		readColumnHeaders:  true,
		writeColumnHeaders: true,
		readRowHeaders:     true,
		writeRowHeaders:    true,
		guessParser:        true,
		parser:             ParseString,
		formatter:          FormatValue,
		kind:               table.KindAny,
		badLineMode:        BadLineModeError,
	}
}

func platformLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// WithColumnDelimiter sets the field separator.
func (o Options) WithColumnDelimiter(r rune) Options {
	o.columnDelimiter = r
	return o
}

// WithQuote sets the quote character.
func (o Options) WithQuote(r rune) Options {
	o.quote = r
	return o
}

// WithRowDelimiter sets the line terminator used by Save.
func (o Options) WithRowDelimiter(s string) Options {
	o.rowDelimiter = s
	return o
}

// WithCornerText sets the text written in the top-left field when both
// header kinds are written.
func (o Options) WithCornerText(s string) Options {
	o.cornerText = s
	return o
}

// WithReadColumnHeaders sets whether the first line holds column headers.
func (o Options) WithReadColumnHeaders(b bool) Options {
	o.readColumnHeaders = b
	return o
}

// WithWriteColumnHeaders sets whether Save writes a header line.
func (o Options) WithWriteColumnHeaders(b bool) Options {
	o.writeColumnHeaders = b
	return o
}

// WithReadRowHeaders sets whether the first field of each line is a row label.
func (o Options) WithReadRowHeaders(b bool) Options {
	o.readRowHeaders = b
	return o
}

// WithWriteRowHeaders sets whether Save writes row labels.
func (o Options) WithWriteRowHeaders(b bool) Options {
	o.writeRowHeaders = b
	return o
}

// WithGuessParser sets whether column parsers are guessed from the first data value.
func (o Options) WithGuessParser(b bool) Options {
	o.guessParser = b
	return o
}

// WithParser sets the parser used for every column and disables guessing.
func (o Options) WithParser(p Parser) Options {
	o.parser = p
	o.guessParser = false
	return o
}

// WithFormatter sets the formatter used for every column.
func (o Options) WithFormatter(f Formatter) Options {
	o.formatter = f
	return o
}

// WithKind makes Open build columns of the given kind, parsed with ParserFor(kind).
// Guessing is disabled.
func (o Options) WithKind(kind table.Kind) Options {
	o = o.WithParser(ParserFor(kind))
	o.kind = kind
	return o
}

// WithColumnParser overrides the parser of column i.
func (o Options) WithColumnParser(i int, p Parser) Options {
	return o.withColumn(i, func(c *ColumnOptions) { c.Parser = p })
}

// WithColumnFormatter overrides the formatter of column i.
func (o Options) WithColumnFormatter(i int, f Formatter) Options {
	return o.withColumn(i, func(c *ColumnOptions) { c.Formatter = f })
}

// WithColumnKind makes Open build column i with the given kind, parsed with
// ParserFor(kind).
func (o Options) WithColumnKind(i int, kind table.Kind) Options {
	return o.withColumn(i, func(c *ColumnOptions) {
		c.Parser = ParserFor(kind)
		c.Kind = kind
	})
}

// WithBadLineMode sets how malformed data lines are handled.
func (o Options) WithBadLineMode(mode BadLineMode) Options {
	o.badLineMode = mode
	return o
}

// WithWarningHandler sets the callback used in BadLineModeWarn.
func (o Options) WithWarningHandler(h WarningHandler) Options {
	o.warningHandler = h
	return o
}

func (o Options) withColumn(i int, edit func(*ColumnOptions)) Options {
	columns := make(map[int]ColumnOptions, len(o.columns)+1)
	for k, v := range o.columns {
		columns[k] = v
	}
	c := columns[i]
	edit(&c)
	columns[i] = c
	o.columns = columns
	return o
}

// ColumnDelimiter returns the field separator.
func (o Options) ColumnDelimiter() rune { return o.columnDelimiter }

// Quote returns the quote character.
func (o Options) Quote() rune { return o.quote }

// RowDelimiter returns the line terminator used by Save.
func (o Options) RowDelimiter() string { return o.rowDelimiter }

// CornerText returns the top-left header text.
func (o Options) CornerText() string { return o.cornerText }

// ReadColumnHeaders reports whether the first line holds column headers.
func (o Options) ReadColumnHeaders() bool { return o.readColumnHeaders }

// WriteColumnHeaders reports whether Save writes a header line.
func (o Options) WriteColumnHeaders() bool { return o.writeColumnHeaders }

// ReadRowHeaders reports whether the first field of each line is a row label.
func (o Options) ReadRowHeaders() bool { return o.readRowHeaders }

// WriteRowHeaders reports whether Save writes row labels.
func (o Options) WriteRowHeaders() bool { return o.writeRowHeaders }

// GuessParser reports whether column parsers are guessed.
func (o Options) GuessParser() bool { return o.guessParser }

// Parser returns the table-wide parser.
func (o Options) Parser() Parser { return o.parser }

// Formatter returns the table-wide formatter.
func (o Options) Formatter() Formatter { return o.formatter }

// Kind returns the kind of the columns Open builds.
func (o Options) Kind() table.Kind { return o.kind }

// BadLineMode returns how malformed data lines are handled.
func (o Options) BadLineMode() BadLineMode { return o.badLineMode }

// WarningHandler returns the callback used in BadLineModeWarn.
func (o Options) WarningHandler() WarningHandler { return o.warningHandler }

// Column returns the overrides registered for column i.
func (o Options) Column(i int) (ColumnOptions, bool) {
	c, ok := o.columns[i]
	return c, ok
}

// parserFor resolves the parser of column i: column override, then a guess
// from sample, then the table-wide parser.
func (o Options) parserFor(i int, sample string) Parser {
	if c, ok := o.columns[i]; ok && c.Parser != nil {
		return c.Parser
	}
	if o.guessParser {
		return GuessParser(sample)
	}
	if o.parser != nil {
		return o.parser
	}
	return ParseString
}

// kindFor resolves the kind of column i.
func (o Options) kindFor(i int) table.Kind {
	if c, ok := o.columns[i]; ok && c.Kind != table.KindAny {
		return c.Kind
	}
	return o.kind
}

// formatterFor resolves the formatter of column i.
func (o Options) formatterFor(i int) Formatter {
	if c, ok := o.columns[i]; ok && c.Formatter != nil {
		return c.Formatter
	}
	if o.formatter != nil {
		return o.formatter
	}
	return FormatValue
}

// Validate checks the delimiter, quote and row delimiter.
func (o Options) Validate() error {
	if !validDelim(o.columnDelimiter) {
		return &OptionsError{Field: "column delimiter", Reason: "must be a valid character other than CR or LF"}
	}
	if !validDelim(o.quote) {
		return &OptionsError{Field: "quote", Reason: "must be a valid character other than CR or LF"}
	}
	if o.quote == o.columnDelimiter {
		return &OptionsError{Field: "quote", Reason: "must differ from the column delimiter"}
	}
	if o.rowDelimiter == "" {
		return &OptionsError{Field: "row delimiter", Reason: "must not be empty"}
	}
	if !o.kind.Valid() {
		return &OptionsError{Field: "kind", Reason: "is not a known column kind"}
	}
	return nil
}

func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}
