//go:build go1.18
// +build go1.18

package parser

import (
	"strings"
	"testing"
)

// FuzzParse checks that parsing never panics and that a successful parse of
// quote-free input matches a plain split.
// Run with: go test -fuzz=FuzzParse -fuzztime=30s ./internal/parser
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c",
		`a,"b,c",d`,
		`a,"b""c",d`,
		`a,"unterminated`,
		`"`,
		`x"y"z`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		fields, err := NewParser(input).Parse()
		if err != nil {
			return
		}
		if !strings.ContainsRune(input, '"') {
			want := strings.Split(input, ",")
			if len(fields) != len(want) {
				t.Fatalf("Parse(%q) returned %d fields, want %d", input, len(fields), len(want))
			}
			for i := range want {
				if fields[i] != want[i] {
					t.Fatalf("Parse(%q)[%d] = %q, want %q", input, i, fields[i], want[i])
				}
			}
		}
	})
}
