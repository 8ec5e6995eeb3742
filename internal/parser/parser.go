// Package parser implements LL(1) recursive descent parsing for one line of
// delimited text. Each production rule in the grammar corresponds to a parse
// function.
//
// Grammar:
//
//	Record    = Field { Separator Field } ;
//	Field     = { Text | QuotedRun } ;
//	QuotedRun = Quote { Text | Separator | Quote Quote } Quote ;
//
// A quote may open a quoted run anywhere in a field, so `a"b,c"d` is the
// single field `ab,cd`.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-table/internal/tokenizer"
)

// ErrUnbalancedQuote indicates a quoted run that is not closed by the end of the line.
var ErrUnbalancedQuote = errors.New("unbalanced quote")

// Error is a parse error with the 1-indexed character column where the
// offending construct starts.
type Error struct {
	Column int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("column %d: %v", e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures the parser behavior.
type Options struct {
	// Separator is the column delimiter. Default: ','
	Separator rune
	// Quote is the quote character. Default: '"'
	Quote rune
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
		Quote:     '"',
	}
}

// Parser implements LL(1) recursive descent parsing for one line.
// It maintains a single token lookahead for predictive parsing.
type Parser struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	opts      Options
	column    int // 1-indexed column of the current token
	next      int // column following the current token
}

// NewParser creates a parser for line with the default separator and quote.
func NewParser(line string) *Parser {
	return NewParserWithOptions(line, DefaultOptions())
}

// NewParserWithOptions creates a parser for line with custom options.
func NewParserWithOptions(line string, opts Options) *Parser {
	tok := tokenizer.NewTokenizerWithStream(shapetokenizer.NewStream(line), tokenizer.Options{
		Separator: opts.Separator,
		Quote:     opts.Quote,
	})

	p := &Parser{
		tokenizer: &tok,
		opts:      opts,
		next:      1,
	}
	p.advance() // Load first token
	return p
}

// Parse parses the line into its unescaped fields.
//
// The number of fields is always the number of separators outside quoted
// runs plus one; an empty line yields a single empty field.
func (p *Parser) Parse() ([]string, error) {
	fields := make([]string, 0, 8)

	field, err := p.parseField()
	if err != nil {
		return nil, err
	}
	fields = append(fields, field)

	// { Separator Field }
	for p.peekKind() == tokenizer.TokenSeparator {
		p.advance() // consume separator

		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, nil
}

// parseField parses one field: a mix of plain text and quoted runs up to
// the next separator outside quotes or the end of the line.
func (p *Parser) parseField() (string, error) {
	var value strings.Builder

	for p.hasToken {
		switch p.peekKind() {
		case tokenizer.TokenSeparator:
			return value.String(), nil
		case tokenizer.TokenQuote:
			if err := p.parseQuotedRun(&value); err != nil {
				return "", err
			}
		default:
			value.WriteString(p.current.ValueString())
			p.advance()
		}
	}

	return value.String(), nil
}

// parseQuotedRun parses a quoted run, appending its unescaped content.
//
// Grammar:
//
//	QuotedRun = Quote { Text | Separator | Quote Quote } Quote ;
func (p *Parser) parseQuotedRun(value *strings.Builder) error {
	start := p.column
	p.advance() // consume opening quote

	for {
		if !p.hasToken {
			return &Error{Column: start, Err: ErrUnbalancedQuote}
		}

		switch p.peekKind() {
		case tokenizer.TokenQuote:
			p.advance() // consume the quote

			// A second quote is an escaped literal quote
			if p.peekKind() == tokenizer.TokenQuote {
				value.WriteRune(p.opts.Quote)
				p.advance()
				continue
			}
			// Closing quote
			return nil
		case tokenizer.TokenSeparator:
			// Separator inside a quoted run is literal
			value.WriteRune(p.opts.Separator)
			p.advance()
		default:
			value.WriteString(p.current.ValueString())
			p.advance()
		}
	}
}

// Helper methods

// peekKind returns the kind of the current token, or "" at end of line.
func (p *Parser) peekKind() string {
	if !p.hasToken || p.current == nil {
		return ""
	}
	return p.current.Kind()
}

// advance moves to the next token and tracks its column.
func (p *Parser) advance() {
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
		p.column = p.next
		p.next += utf8.RuneCountInString(token.ValueString())
	} else {
		p.hasToken = false
		p.current = nil
		p.column = p.next
	}
}

// ParseLine splits line into unescaped fields.
func ParseLine(line string, opts Options) ([]string, error) {
	return NewParserWithOptions(line, opts).Parse()
}
