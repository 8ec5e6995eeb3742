//go:build go1.18
// +build go1.18

package tokenizer

import (
	"testing"
)

// FuzzTokenizer tests the tokenizer with random inputs to find edge cases and panics.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		"\"",
		"\"\"",
		"a,b,c",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"'single' 'quotes'",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// The tokenizer should never panic, regardless of input
		for _, opts := range []Options{DefaultOptions(), {Separator: ' ', Quote: '\''}} {
			tok := NewTokenizerWithOptions(opts)
			tok.Initialize(input)
			for {
				if _, ok := tok.NextToken(); !ok {
					break
				}
			}
		}
	})
}
