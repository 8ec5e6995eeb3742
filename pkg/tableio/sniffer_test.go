package tableio_test

import (
	"testing"

	"github.com/shapestone/shape-table/pkg/tableio"
)

func TestSnifferDetectDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		sample   string
		expected rune
	}{
		{"comma delimited", "a,b,c\n1,2,3\n4,5,6", ','},
		{"tab delimited", "a\tb\tc\n1\t2\t3\n4\t5\t6", '\t'},
		{"semicolon delimited", "a;b;c\n1;2;3\n4;5;6", ';'},
		{"pipe delimited", "a|b|c\n1|2|3\n4|5|6", '|'},
		{"empty sample defaults to comma", "", ','},
		{"single line comma", "a,b,c", ','},
		{"mixed but more commas", "a,b,c\n1,2,3\n4;5;6", ','},
		{"quoted commas ignored", "\"a,b\";c;d\n1;2;3", ';'},
		{"crlf lines", "a;b\r\n1;2\r\n", ';'},
		{"single-quoted fields", "'a;b',c\n'1;2',3", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tableio.NewSniffer(tt.sample).DetectDelimiter(); got != tt.expected {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSnifferDetectQuote(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   rune
	}{
		{"no quotes", "a,b\n1,2", '"'},
		{"double quotes", "\"a\",\"b\"\n1,2", '"'},
		{"single quotes", "'a','b'\n'x',2", '\''},
		{"apostrophe inside a field", "name,note\nbob,it's fine", '"'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tableio.NewSniffer(tt.sample).DetectQuote(); got != tt.want {
				t.Errorf("DetectQuote() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSnifferHasHeader(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   bool
	}{
		{"identifier headers", "name,age,email\nAlice,30,alice@example.com", true},
		{"title case headers", "First Name,Last Name\nAda,Lovelace", true},
		{"numeric first line", "1,2,3\n4,5,6", false},
		{"boolean first line", "true,false\nfalse,true", false},
		{"single line", "name,age", false},
		{"dates first line", "2024-01-01,2024-01-02\n2024-02-01,2024-02-02", false},
		{"blank data lines", "name,age\n\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tableio.NewSniffer(tt.sample).HasHeader(); got != tt.want {
				t.Errorf("HasHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnifferOptions(t *testing.T) {
	sample := "id;score\n1;2.5\n2;3.5\n"
	opts := tableio.NewSniffer(sample).Options(tableio.DefaultOptions().WithReadRowHeaders(false))
	if opts.ColumnDelimiter() != ';' || opts.Quote() != '"' || !opts.ReadColumnHeaders() {
		t.Fatalf("Options() = delimiter %q quote %q headers %v", opts.ColumnDelimiter(), opts.Quote(), opts.ReadColumnHeaders())
	}
	if opts.ReadRowHeaders() {
		t.Error("Options() should keep base settings")
	}

	tbl, err := tableio.Open(sample, opts)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	assertTable(t, tbl, []string{"id", "score"}, []string{"", ""}, [][]any{{1.0, 2.5}, {2.0, 3.5}})
}
