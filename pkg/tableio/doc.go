// Package tableio reads and writes tables as delimited text.
//
// # Reading
//
// Open tokenizes each line with a quote-aware field splitter, takes column
// headers and row labels from the first line and field as configured, and
// parses every cell with its column's parser:
//
//	t, err := tableio.Open("\\,a,b\nr1,1,true\n", tableio.DefaultOptions())
//	// t has columns "a" (float64 1) and "b" (bool true), row "r1"
//
// By default parsers are guessed from each column's first data value: numbers
// become float64, true/false become bool, anything else stays a string.
// WithParser, WithKind and the per-column setters replace the guess.
//
// # Writing
//
// Save renders a table back to text with the column formatters. Fields that
// are empty or contain the separator or the quote are quoted, so text written
// by Save reads back to the same cells:
//
//	text, err := tableio.Save(t, tableio.DefaultOptions())
//
// # Options
//
// Options is an immutable value. Start from DefaultOptions and derive
// variants with the With methods:
//
//	opts := tableio.DefaultOptions().
//		WithColumnDelimiter(';').
//		WithReadRowHeaders(false).
//		WithColumnKind(0, table.KindInt)
//
// # Errors
//
// Malformed lines yield a *ParseError carrying the line and, where known, the
// column or field. errors.Is distinguishes ErrUnbalancedQuote from
// ErrRowLength. WithBadLineMode lets Open skip malformed data lines instead,
// optionally reporting them to a WarningHandler. Byte sources that cannot be
// read yield a *SourceError matching ErrSourceUnavailable.
package tableio
