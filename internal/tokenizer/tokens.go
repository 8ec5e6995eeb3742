// Package tokenizer provides delimited-line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for one delimited line.
//
// Note: The tokenizer emits simple character-level tokens. The parser is
// responsible for interpreting quotes and determining field boundaries.
const (
	// Structural tokens
	TokenSeparator = "Separator" // column delimiter
	TokenQuote     = "Quote"     // quote character

	// Field content token
	TokenField = "Field" // run of characters that are neither separator nor quote
)
