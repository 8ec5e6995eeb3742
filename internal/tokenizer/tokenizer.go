package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Separator is the column delimiter. Default: ','
	Separator rune
	// Quote opens and closes quoted runs. Default: '"'
	Quote rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Separator: ',',
		Quote:     '"',
	}
}

// NewTokenizer creates a tokenizer with the default separator and quote.
func NewTokenizer() tokenizer.Tokenizer {
	return NewTokenizerWithOptions(DefaultOptions())
}

// NewTokenizerWithOptions creates a tokenizer for one line of delimited text.
//
// Field content depends on context (inside or outside quotes), so the
// tokenizer works at the character level and leaves that decision to the
// parser:
// 1. Separator
// 2. Quote
// 3. Field content (any run of other characters)
//
// Line terminators are not tokens: lines are split before tokenization and
// any stray CR or LF is plain field content.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenSeparator, string(opts.Separator)),
		tokenizer.StringMatcherFunc(TokenQuote, string(opts.Quote)),
		FieldContentMatcher(opts.Separator, opts.Quote),
	)
}

// NewTokenizerWithStream creates a tokenizer from a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// FieldContentMatcher creates a matcher for runs of characters that are
// neither the separator nor the quote.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except separator and quote> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func FieldContentMatcher(sep, quote rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if sep < 128 && quote < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return fieldContentMatcherByte(byteStream, byte(sep), byte(quote))
			}
		}
		return fieldContentMatcherRune(stream, sep, quote)
	}
}

// fieldContentMatcherByte uses ByteStream for optimal performance.
func fieldContentMatcherByte(stream tokenizer.ByteStream, sep, quote byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok || b == sep || b == quote {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

// fieldContentMatcherRune is the fallback rune-based implementation.
func fieldContentMatcherRune(stream tokenizer.Stream, sep, quote rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok || r == sep || r == quote {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}
