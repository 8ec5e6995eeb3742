package tableio_test

import (
	"math"
	"testing"
	"time"

	"github.com/shapestone/shape-table/pkg/table"
	"github.com/shapestone/shape-table/pkg/tableio"
)

func TestGuessParser(t *testing.T) {
	tests := []struct {
		token string
		want  any
	}{
		{"test", "test"},
		{"false", false},
		{"TRUE", true},
		{"123.0", 123.0},
		{"-123.0", -123.0},
		{"3", 3.0},
		{"36564573745634564", 36564573745634564.0},
		{"1.2345678900987654E9", 1234567890.0987654321},
		{"-Infinity", math.Inf(-1)},
		{"infinity", math.Inf(1)},
		{"+INFINITY", math.Inf(1)},
		{"0.0", 0.0},
		{"   3.1415926   ", 3.1415926},
		{".5", 0.5},
		{"5.", 5.0},
		{"1e400", math.Inf(1)},
		{"", ""},
		{"inf", "inf"},
		{"0x10", "0x10"},
		{"1_000", "1_000"},
		{"1e", "1e"},
		{"12abc", "12abc"},
		{"yes", "yes"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := tableio.GuessParser(tt.token)(tt.token)
			if err != nil {
				t.Fatalf("parser(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("parser(%q) = %#v, want %#v", tt.token, got, tt.want)
			}
		})
	}
}

func TestGuessParserNaN(t *testing.T) {
	for _, token := range []string{"NaN", "Nan", "nan", "-NaN"} {
		got := tableio.Guess(token)
		f, ok := got.(float64)
		if !ok || !math.IsNaN(f) {
			t.Errorf("Guess(%q) = %#v, want NaN", token, got)
		}
	}
}

func TestGuessParserStableForColumn(t *testing.T) {
	p := tableio.GuessParser("1")
	if _, err := p("abc"); err == nil {
		t.Error("float parser accepted non-numeric text")
	}
	p = tableio.GuessParser("true")
	if _, err := p("yes"); err == nil {
		t.Error("bool parser accepted yes")
	}
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"whole float", 123.0, "123.0"},
		{"negative float", -123.0, "-123.0"},
		{"zero", 0.0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"fraction", 3.1415926, "3.1415926"},
		{"small", 0.001, "0.001"},
		{"tiny", 0.0001, "1.0E-4"},
		{"large", 1234567890.0987654321, "1.2345678900987654E9"},
		{"lower bound of plain form", 9999999.0, "9999999.0"},
		{"upper bound", 1e7, "1.0E7"},
		{"huge", 1e300, "1.0E300"},
		{"nan", math.NaN(), "NaN"},
		{"+inf", math.Inf(1), "Infinity"},
		{"-inf", math.Inf(-1), "-Infinity"},
		{"float32 fraction", float32(0.1), "0.1"},
		{"float32 whole", float32(2), "2.0"},
		{"float32 large", float32(1e10), "1.0E10"},
		{"float32 nan", float32(math.NaN()), "NaN"},
		{"bool", true, "true"},
		{"int64", int64(-42), "-42"},
		{"int", 7, "7"},
		{"time", ts, "2024-03-01T12:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tableio.FormatValue(tt.in); got != tt.want {
				t.Errorf("FormatValue(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatValueRoundTrip(t *testing.T) {
	values := []float64{123.0, -0.5, 1e-10, 6.02214076e23, 1234567890.0987654321, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range values {
		s := tableio.FormatValue(v)
		got, err := tableio.ParseFloat(s)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error = %v", s, err)
		}
		if got != v {
			t.Errorf("round trip of %v through %q = %v", v, s, got)
		}
	}
}

func TestParserFor(t *testing.T) {
	tests := []struct {
		name  string
		kind  table.Kind
		input string
		want  any
	}{
		{"string keeps spaces", table.KindString, " a ", " a "},
		{"any is identity", table.KindAny, "1", "1"},
		{"int", table.KindInt, " 42 ", int64(42)},
		{"int empty is absent", table.KindInt, "", nil},
		{"float", table.KindFloat, "2.5", 2.5},
		{"float empty is absent", table.KindFloat, "", nil},
		{"bool", table.KindBool, " False ", false},
		{"date", table.KindTime, "2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"datetime", table.KindTime, "2024-03-01 08:15:00", time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC)},
		{"rfc3339", table.KindTime, "2024-03-01T08:15:00Z", time.Date(2024, 3, 1, 8, 15, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tableio.ParserFor(tt.kind)(tt.input)
			if err != nil {
				t.Fatalf("parse %q error = %v", tt.input, err)
			}
			if want, ok := tt.want.(time.Time); ok {
				if gt, _ := got.(time.Time); !gt.Equal(want) {
					t.Errorf("got %v, want %v", got, want)
				}
				return
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParserForErrors(t *testing.T) {
	tests := []struct {
		kind  table.Kind
		input string
	}{
		{table.KindInt, "1.5"},
		{table.KindFloat, "one"},
		{table.KindBool, "yes"},
		{table.KindTime, "yesterday"},
	}
	for _, tt := range tests {
		if _, err := tableio.ParserFor(tt.kind)(tt.input); err == nil {
			t.Errorf("ParserFor(%v)(%q) succeeded, want error", tt.kind, tt.input)
		}
	}
}
