package tableio_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/shapestone/shape-table/pkg/table"
	"github.com/shapestone/shape-table/pkg/tableio"
)

func TestDefaultOptions(t *testing.T) {
	opts := tableio.DefaultOptions()

	wantRowDelimiter := "\n"
	if runtime.GOOS == "windows" {
		wantRowDelimiter = "\r\n"
	}
	if opts.ColumnDelimiter() != ',' {
		t.Errorf("ColumnDelimiter = %q, want ','", opts.ColumnDelimiter())
	}
	if opts.Quote() != '"' {
		t.Errorf("Quote = %q, want '\"'", opts.Quote())
	}
	if opts.RowDelimiter() != wantRowDelimiter {
		t.Errorf("RowDelimiter = %q, want %q", opts.RowDelimiter(), wantRowDelimiter)
	}
	if opts.CornerText() != `\` {
		t.Errorf("CornerText = %q, want %q", opts.CornerText(), `\`)
	}
	if !opts.ReadColumnHeaders() || !opts.WriteColumnHeaders() || !opts.ReadRowHeaders() || !opts.WriteRowHeaders() {
		t.Error("header options should all default to true")
	}
	if !opts.GuessParser() {
		t.Error("GuessParser should default to true")
	}
	if opts.BadLineMode() != tableio.BadLineModeError {
		t.Errorf("BadLineMode = %v, want error", opts.BadLineMode())
	}
	if opts.Kind() != table.KindAny {
		t.Errorf("Kind = %v, want any", opts.Kind())
	}
	if got, _ := opts.Parser()("x"); got != "x" {
		t.Errorf("default parser = %#v, want identity", got)
	}
	if got := opts.Formatter()(1.0); got != "1.0" {
		t.Errorf("default formatter = %q, want FormatValue", got)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestOptionsCopyOnWrite(t *testing.T) {
	base := tableio.DefaultOptions()
	derived := base.WithColumnDelimiter(';').WithColumnParser(0, tableio.ParseFloat)
	again := derived.WithColumnFormatter(1, func(any) string { return "x" })

	if base.ColumnDelimiter() != ',' {
		t.Errorf("base delimiter changed to %q", base.ColumnDelimiter())
	}
	if _, ok := base.Column(0); ok {
		t.Error("base gained a column override")
	}
	if _, ok := derived.Column(1); ok {
		t.Error("derived gained a column override added to a later copy")
	}
	c, ok := again.Column(0)
	if !ok || c.Parser == nil || c.Formatter != nil {
		t.Errorf("again.Column(0) = %+v, %v", c, ok)
	}
	if c, ok := again.Column(1); !ok || c.Formatter == nil {
		t.Errorf("again.Column(1) = %+v, %v", c, ok)
	}
}

func TestOptionsParserDisablesGuess(t *testing.T) {
	opts := tableio.DefaultOptions().WithParser(tableio.ParseFloat)
	if opts.GuessParser() {
		t.Error("WithParser should disable guessing")
	}

	opts = tableio.DefaultOptions().WithKind(table.KindInt)
	if opts.GuessParser() {
		t.Error("WithKind should disable guessing")
	}
	if opts.Kind() != table.KindInt {
		t.Errorf("Kind = %v, want int", opts.Kind())
	}
	if got, _ := opts.Parser()("12"); got != int64(12) {
		t.Errorf("kind parser = %#v, want int64(12)", got)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name  string
		opts  tableio.Options
		field string
	}{
		{"zero delimiter", tableio.DefaultOptions().WithColumnDelimiter(0), "column delimiter"},
		{"newline delimiter", tableio.DefaultOptions().WithColumnDelimiter('\n'), "column delimiter"},
		{"carriage return quote", tableio.DefaultOptions().WithQuote('\r'), "quote"},
		{"invalid rune quote", tableio.DefaultOptions().WithQuote(0xD800), "quote"},
		{"quote equals delimiter", tableio.DefaultOptions().WithQuote(','), "quote"},
		{"empty row delimiter", tableio.DefaultOptions().WithRowDelimiter(""), "row delimiter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			var oerr *tableio.OptionsError
			if !errors.As(err, &oerr) {
				t.Fatalf("Validate() error = %v, want *OptionsError", err)
			}
			if oerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", oerr.Field, tt.field)
			}
			if !errors.Is(err, tableio.ErrInvalidOptions) {
				t.Error("error should match ErrInvalidOptions")
			}
		})
	}
}

func TestOpenRejectsInvalidOptions(t *testing.T) {
	_, err := tableio.Open("a,b\n", tableio.DefaultOptions().WithQuote(','))
	if !errors.Is(err, tableio.ErrInvalidOptions) {
		t.Errorf("Open() error = %v, want ErrInvalidOptions", err)
	}
	_, err = tableio.Save(table.New(), tableio.DefaultOptions().WithRowDelimiter(""))
	if !errors.Is(err, tableio.ErrInvalidOptions) {
		t.Errorf("Save() error = %v, want ErrInvalidOptions", err)
	}
}
